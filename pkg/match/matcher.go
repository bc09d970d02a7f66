package match

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

const (
	// tokenProbeMinTermLen gates the tokenized fallback: terms of this
	// length or shorter are a single token anyway.
	tokenProbeMinTermLen = 3

	// tokenMinLen drops connective fragments ("5g", "de") from probes.
	tokenMinLen = 3

	// advancedCandidateLimit bounds the advanced query's candidate list.
	advancedCandidateLimit = 20
)

// Matcher runs fuzzy name searches over a corpus repository. Every
// method degrades repository faults to "no match": the resolution path
// must keep moving when the corpus is empty or unreachable.
type Matcher struct {
	repo corpus.Repository
	log  *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger attaches a structured logger; nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(m *Matcher) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMatcher wraps repo. A nil repo yields a matcher that never matches,
// which is the documented degradation mode for a missing corpus.
func NewMatcher(repo corpus.Repository, opts ...Option) *Matcher {
	m := &Matcher{
		repo: repo,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SearchByName resolves a free-form term to a single corpus record via
// a three-stage fallback: exact folded equality, then substring
// containment, then (for terms longer than three characters) a probe of
// each whitespace token longer than two characters. Ties within a stage
// resolve to the lowest record ID.
func (m *Matcher) SearchByName(ctx context.Context, term string) (*corpus.Record, bool) {
	term = strings.TrimSpace(term)
	if term == "" || m.repo == nil {
		return nil, false
	}

	if rec, err := m.repo.Exact(ctx, term); err == nil {
		metrics.RecordCorpusLookup(metrics.LookupHit)
		return rec, true
	} else {
		m.faulted(err, "exact", term)
	}

	if rec, ok := m.firstSubstring(ctx, term); ok {
		return rec, true
	}

	if len(term) > tokenProbeMinTermLen {
		for _, token := range textmatch.Tokenize(term, tokenMinLen) {
			if rec, ok := m.firstSubstring(ctx, token); ok {
				return rec, true
			}
		}
	}

	metrics.RecordCorpusLookup(metrics.LookupMiss)
	return nil, false
}

// AdvancedQuery carries the signals available to AdvancedMatch. Screen
// geometry and GPU renderer are accepted for interface stability but
// are not used to narrow the candidate list yet; the query is purely
// textual today and the first candidate is returned verbatim.
type AdvancedQuery struct {
	Brand        string
	Model        string
	ScreenWidth  int
	ScreenHeight int
	GPURenderer  string
}

// AdvancedMatch runs a brand+model substring query bounded to a small
// candidate list, retrying with the model alone when the combined term
// finds nothing.
func (m *Matcher) AdvancedMatch(ctx context.Context, q AdvancedQuery) (*corpus.Record, bool) {
	if m.repo == nil {
		return nil, false
	}

	term := strings.TrimSpace(strings.TrimSpace(q.Brand) + " " + strings.TrimSpace(q.Model))
	if term != "" {
		if recs := m.many(ctx, term, advancedCandidateLimit); len(recs) > 0 {
			metrics.RecordCorpusLookup(metrics.LookupHit)
			return &recs[0], true
		}
	}

	if model := strings.TrimSpace(q.Model); model != "" && model != term {
		if recs := m.many(ctx, model, advancedCandidateLimit); len(recs) > 0 {
			metrics.RecordCorpusLookup(metrics.LookupHit)
			return &recs[0], true
		}
	}

	metrics.RecordCorpusLookup(metrics.LookupMiss)
	return nil, false
}

// SearchMany returns up to limit substring matches for term. Diagnostic
// surface only; the resolution cascade never calls it.
func (m *Matcher) SearchMany(ctx context.Context, term string, limit int) []corpus.Record {
	if m.repo == nil {
		return nil
	}
	return m.many(ctx, term, limit)
}

func (m *Matcher) firstSubstring(ctx context.Context, term string) (*corpus.Record, bool) {
	recs := m.many(ctx, term, 1)
	if len(recs) == 0 {
		return nil, false
	}
	metrics.RecordCorpusLookup(metrics.LookupHit)
	return &recs[0], true
}

func (m *Matcher) many(ctx context.Context, term string, limit int) []corpus.Record {
	recs, err := m.repo.Substring(ctx, term, limit)
	if err != nil {
		m.faulted(err, "substring", term)
		return nil
	}
	return recs
}

// faulted reports whether err is a real repository fault (as opposed to
// plain absence). Faults are logged and counted, then swallowed: the
// engine favors availability over strict correctness.
func (m *Matcher) faulted(err error, stage, term string) bool {
	if err == nil || errors.Is(err, corpus.ErrNotFound) {
		return false
	}
	metrics.RecordCorpusLookup(metrics.LookupFault)
	m.log.Warn("corpus query failed, treating as no match",
		slog.String("stage", stage),
		slog.String("term", term),
		slog.Any("error", err),
	)
	return true
}
