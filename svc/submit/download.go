package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/msprojectmerger/landing/pkg/logger"
)

// FileDownloader saves each triggered URL into a directory in the
// background. Downloads outlive the submission that triggered them but stop
// when the downloader's own context ends. Wait blocks until all started
// downloads finish.
type FileDownloader struct {
	ctx  context.Context
	dir  string
	http HTTPDoer
	log  *slog.Logger

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
	done []string
}

// NewFileDownloader bounds every download by ctx.
func NewFileDownloader(ctx context.Context, dir string, client HTTPDoer, log *slog.Logger) *FileDownloader {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &FileDownloader{ctx: ctx, dir: dir, http: client, log: log}
}

func (d *FileDownloader) Trigger(ctx context.Context, rawURL string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		dst, err := d.fetch(d.ctx, rawURL)

		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.log.ErrorContext(ctx, "download failed", slog.String("url", rawURL), logger.Error(err))
			d.errs = append(d.errs, err)
			return
		}
		d.log.InfoContext(ctx, "download saved", slog.String("path", dst))
		d.done = append(d.done, dst)
	}()
}

// Wait returns the saved file paths and the joined download errors.
func (d *FileDownloader) Wait() ([]string, error) {
	d.wg.Wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.done...), errors.Join(d.errs...)
}

func (d *FileDownloader) fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return "", fmt.Errorf("%w: no file name in %q", ErrDownloadFailed, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrDownloadFailed, rawURL, resp.Status)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	tmp, err := os.CreateTemp(d.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	dst := filepath.Join(d.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	return dst, nil
}
