package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// SearchConfig holds connection parameters for a corpus kept in an
// OpenSearch cluster, with environment variable mapping compatible with
// github.com/dmitrymomot/devicekit/pkg/config.
type SearchConfig struct {
	Addresses    []string `env:"CORPUS_OPENSEARCH_ADDRESSES,required"`
	Username     string   `env:"CORPUS_OPENSEARCH_USERNAME"`
	Password     string   `env:"CORPUS_OPENSEARCH_PASSWORD"`
	Index        string   `env:"CORPUS_OPENSEARCH_INDEX" envDefault:"device-corpus"`
	MaxRetries   int      `env:"CORPUS_OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"CORPUS_OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
}

// SearchStore is a Repository backed by an OpenSearch index, for
// deployments whose corpus is too large or too shared to snapshot in
// memory. Query faults surface as errors joined with ErrQueryFailed;
// the matcher degrades them to "no match" on the resolution path.
type SearchStore struct {
	client *opensearch.Client
	index  string
}

// NewSearchStore connects to the cluster described by cfg, verifies
// connectivity, and returns a store bound to the configured index.
func NewSearchStore(ctx context.Context, cfg SearchConfig) (*SearchStore, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	})
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	if _, err := client.Info(client.Info.WithContext(ctx)); err != nil {
		return nil, errors.Join(ErrHealthcheckFailed, err)
	}

	return &SearchStore{client: client, index: cfg.Index}, nil
}

// NewSearchStoreWithClient wraps an existing client, mainly for tests.
func NewSearchStoreWithClient(client *opensearch.Client, index string) *SearchStore {
	return &SearchStore{client: client, index: index}
}

type searchHits struct {
	Hits struct {
		Hits []struct {
			Source Record `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Exact implements Repository via a case-insensitive term query on the
// folded full name.
func (s *SearchStore) Exact(ctx context.Context, name string) (*Record, error) {
	key := textmatch.Fold(name)
	if key == "" {
		return nil, ErrNotFound
	}

	records, err := s.query(ctx, map[string]any{
		"term": map[string]any{
			"full_name.keyword": map[string]any{
				"value":            key,
				"case_insensitive": true,
			},
		},
	}, 1)
	if err != nil {
		return nil, err
	}
	// The keyword term query is case-insensitive but not fold-aware for
	// exotic scripts, so the folded comparison has the final say.
	if !textmatch.Equal(records[0].FullName, name) {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

// Substring implements Repository via a wildcard query, sorted by
// ascending record ID to keep tie-breaking deterministic.
func (s *SearchStore) Substring(ctx context.Context, term string, limit int) ([]Record, error) {
	needle := textmatch.Fold(term)
	if needle == "" {
		return nil, ErrNotFound
	}
	if limit <= 0 {
		limit = 100
	}

	return s.query(ctx, map[string]any{
		"wildcard": map[string]any{
			"full_name.keyword": map[string]any{
				"value":            "*" + escapeWildcard(needle) + "*",
				"case_insensitive": true,
			},
		},
	}, limit)
}

func (s *SearchStore) query(ctx context.Context, q map[string]any, size int) ([]Record, error) {
	body, err := json.Marshal(map[string]any{
		"query": q,
		"size":  size,
		"sort":  []any{map[string]any{"id": map[string]any{"order": "asc"}}},
	})
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Join(ErrQueryFailed, fmt.Errorf("search returned %s", res.Status()))
	}

	var hits searchHits
	if err := json.NewDecoder(res.Body).Decode(&hits); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	if len(hits.Hits.Hits) == 0 {
		return nil, ErrNotFound
	}

	records := make([]Record, 0, len(hits.Hits.Hits))
	for _, h := range hits.Hits.Hits {
		records = append(records, h.Source)
	}
	return records, nil
}

// escapeWildcard neutralizes the wildcard metacharacters so corpus terms
// containing them stay literal.
func escapeWildcard(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "*", `\*`)
	return strings.ReplaceAll(s, "?", `\?`)
}
