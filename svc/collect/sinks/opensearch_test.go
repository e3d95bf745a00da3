package sinks_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/svc/collect"
	"github.com/msprojectmerger/landing/svc/collect/sinks"
)

func newSearchClient(t *testing.T, h http.HandlerFunc) *opensearchgo.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client, err := opensearchgo.NewClient(opensearchgo.Config{Addresses: []string{srv.URL}, DisableRetry: true})
	require.NoError(t, err)
	return client
}

func TestOpenSearch(t *testing.T) {
	t.Parallel()

	t.Run("indexes document", func(t *testing.T) {
		t.Parallel()
		var (
			gotMethod, gotPath string
			gotDoc             map[string]any
		)
		client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotDoc)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"result":"created"}`))
		})

		err := sinks.NewOpenSearch(client, "").Accept(context.Background(), collect.Record{Email: "a@b", Platform: "mac", Timestamp: "ts"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/"+sinks.DefaultOpenSearchIndex+"/_doc", gotPath)
		assert.Equal(t, "a@b", gotDoc["email"])
		assert.Equal(t, "mac", gotDoc["platform"])
		assert.NotEmpty(t, gotDoc["received_at"])
	})

	t.Run("error status", func(t *testing.T) {
		t.Parallel()
		client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"index closed"}`))
		})

		err := sinks.NewOpenSearch(client, "leads").Accept(context.Background(), collect.Record{Email: "a@b"})
		assert.ErrorIs(t, err, sinks.ErrStoreRecord)
		assert.Contains(t, err.Error(), "index closed")
	})
}
