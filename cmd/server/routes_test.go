package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/pkg/environment"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/svc/collect"
)

func testAppConfig(staticDir string) appConfig {
	return appConfig{
		EndpointPath: "/api/collect-email",
		MaxBodySize:  1 << 20,
		StaticDir:    staticDir,
		CORSOrigins:  []string{"*"},
		CORSMaxAge:   300,
	}
}

func TestRouter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>landing</h1>"), 0o644))

	sink := collect.NewMemorySink()
	router := newRouter(testAppConfig(dir), environment.Development, sink, nil, logger.Discard())

	t.Run("collects email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/collect-email",
			strings.NewReader(`{"email":"a@b.co","platform":"mac","timestamp":"2024-01-01T00:00:00.000Z"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Email collected successfully"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("rejects get on endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/collect-email", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		for _, path := range []string{"/health/live", "/health/ready"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("serves static page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "landing")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/collect-email", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	assert.Equal(t, 1, sink.Len())
}
