package submit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/svc/submit"
)

func TestFileDownloader(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/downloads/msproject-merge.exe", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("MZ binary"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	dl := submit.NewFileDownloader(context.Background(), dir, srv.Client(), logger.Discard())

	dl.Trigger(context.Background(), srv.URL+"/downloads/msproject-merge.exe")
	dl.Trigger(context.Background(), srv.URL+"/downloads/missing.dmg")

	saved, err := dl.Wait()
	assert.ErrorIs(t, err, submit.ErrDownloadFailed)
	require.Equal(t, []string{filepath.Join(dir, "msproject-merge.exe")}, saved)

	data, err := os.ReadFile(saved[0])
	require.NoError(t, err)
	assert.Equal(t, "MZ binary", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileDownloader_StalledServer(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1024")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	dir := t.TempDir()
	dl := submit.NewFileDownloader(ctx, dir, srv.Client(), logger.Discard())
	// The triggering context is already gone; the download still runs until
	// the downloader's context ends.
	triggerCtx, stop := context.WithCancel(context.Background())
	stop()
	dl.Trigger(triggerCtx, srv.URL+"/downloads/app.dmg")

	done := make(chan error, 1)
	go func() {
		_, err := dl.Wait()
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, submit.ErrDownloadFailed)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after the context deadline")
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
