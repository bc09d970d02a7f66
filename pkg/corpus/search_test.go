package corpus_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/devicekit/pkg/corpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSearchTestServer fakes the two cluster endpoints the store touches:
// the info ping and the index search.
func newSearchTestServer(t *testing.T, hits []corpus.Record, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			fmt.Fprint(w, `{"version":{"number":"2.11.0","distribution":"opensearch"}}`)
			return
		}

		require.Equal(t, "/device-corpus/_search", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"sort"`)

		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"type":"search_phase_execution_exception"}}`)
			return
		}

		type hit struct {
			Source corpus.Record `json:"_source"`
		}
		wrapped := make([]hit, len(hits))
		for i, h := range hits {
			wrapped[i] = hit{Source: h}
		}
		resp := map[string]any{"hits": map[string]any{"hits": wrapped}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestStore(t *testing.T, srv *httptest.Server) *corpus.SearchStore {
	t.Helper()
	client, err := opensearch.NewClient(opensearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return corpus.NewSearchStoreWithClient(client, "device-corpus")
}

func TestSearchStoreSubstring(t *testing.T) {
	t.Parallel()
	srv := newSearchTestServer(t, []corpus.Record{
		{ID: 31, FullName: "Google Pixel 7", EUICC: true},
		{ID: 42, FullName: "Google Pixel 7 Pro", EUICC: true},
	}, http.StatusOK)
	defer srv.Close()

	recs, err := newTestStore(t, srv).Substring(context.Background(), "Pixel 7", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Google Pixel 7", recs[0].FullName)
	assert.True(t, recs[0].EUICC)
}

func TestSearchStoreExact(t *testing.T) {
	t.Parallel()
	srv := newSearchTestServer(t, []corpus.Record{
		{ID: 19, FullName: "Apple iPhone XS", EUICC: true},
	}, http.StatusOK)
	defer srv.Close()

	rec, err := newTestStore(t, srv).Exact(context.Background(), "apple iphone xs")
	require.NoError(t, err)
	assert.Equal(t, int64(19), rec.ID)
}

func TestSearchStoreNoHits(t *testing.T) {
	t.Parallel()
	srv := newSearchTestServer(t, nil, http.StatusOK)
	defer srv.Close()

	_, err := newTestStore(t, srv).Substring(context.Background(), "nothing", 10)
	assert.ErrorIs(t, err, corpus.ErrNotFound)
}

func TestSearchStoreClusterFault(t *testing.T) {
	t.Parallel()
	srv := newSearchTestServer(t, nil, http.StatusInternalServerError)
	defer srv.Close()

	_, err := newTestStore(t, srv).Substring(context.Background(), "pixel", 10)
	assert.ErrorIs(t, err, corpus.ErrQueryFailed)
}
