package corpus

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// MemoryStore is a read-only, in-memory corpus snapshot. It is built
// once (normally at startup, from an Import run) and is safe for
// unsynchronized concurrent reads because it is never mutated afterward.
type MemoryStore struct {
	byKey   map[string]*Record
	ordered []Record // ascending ID; folded names cached alongside
	folded  []string
}

// NewMemoryStore builds a snapshot from records. Input is copied, sorted
// by ascending ID, and indexed by case-folded full name. When several
// records fold to the same name the lowest ID wins.
func NewMemoryStore(records []Record) *MemoryStore {
	ordered := slices.Clone(records)
	slices.SortFunc(ordered, func(a, b Record) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	s := &MemoryStore{
		byKey:   make(map[string]*Record, len(ordered)),
		ordered: ordered,
		folded:  make([]string, len(ordered)),
	}
	for i := range s.ordered {
		key := s.ordered[i].Key()
		s.folded[i] = key
		if _, exists := s.byKey[key]; !exists {
			s.byKey[key] = &s.ordered[i]
		}
	}
	return s
}

// Len returns the number of records in the snapshot.
func (s *MemoryStore) Len() int { return len(s.ordered) }

// Exact implements Repository.
func (s *MemoryStore) Exact(_ context.Context, name string) (*Record, error) {
	key := textmatch.Fold(name)
	if key == "" {
		return nil, ErrNotFound
	}
	if rec, ok := s.byKey[key]; ok {
		return rec, nil
	}
	return nil, ErrNotFound
}

// Substring implements Repository. Results keep the snapshot's ascending
// ID order, so the first row is always the lowest-ID match.
func (s *MemoryStore) Substring(_ context.Context, term string, limit int) ([]Record, error) {
	needle := textmatch.Fold(term)
	if needle == "" {
		return nil, ErrNotFound
	}

	var out []Record
	for i := range s.ordered {
		if !strings.Contains(s.folded[i], needle) {
			continue
		}
		out = append(out, s.ordered[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
