package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/validator"
)

const (
	// TimestampLayout matches JavaScript's Date.prototype.toISOString.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	DefaultSuccessDelay = 5 * time.Second

	MsgTransportError = "An error occurred. Please try again."
)

// record is the JSON body posted to the collection endpoint.
type record struct {
	Email     string `json:"email"`
	Platform  string `json:"platform"`
	Timestamp string `json:"timestamp"`
}

// Client submits an email and platform choice, then starts the matching
// download. It holds no per-submission state.
type Client struct {
	endpoint     *url.URL
	targets      Targets
	platforms    []string
	view         View
	downloader   Downloader
	http         HTTPDoer
	clock        Clock
	log          *slog.Logger
	successDelay time.Duration
}

// New requires an absolute http(s) endpoint and a valid target table.
func New(endpoint string, targets Targets, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidEndpoint, endpoint)
	}
	if err := targets.Validate(); err != nil {
		return nil, err
	}
	targets = maps.Clone(targets)

	c := &Client{
		endpoint:     u,
		targets:      targets,
		platforms:    targets.Platforms(),
		view:         nopView{},
		downloader:   nopDownloader{},
		http:         &http.Client{Timeout: 30 * time.Second},
		clock:        realClock{},
		log:          slog.Default(),
		successDelay: DefaultSuccessDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Submit posts one record and, when the endpoint accepts it, shows the
// success notice, starts the download and clears the email input. Empty
// input is ignored silently.
func (c *Client) Submit(ctx context.Context, email, platform string) error {
	if email == "" || platform == "" {
		return nil
	}

	downloadURL, err := c.downloadURL(platform)
	if err != nil {
		c.log.ErrorContext(ctx, "no download target", logger.Platform(platform), logger.Error(err))
		c.view.Alert(fmt.Sprintf("Downloads are not available for %q.", platform))
		return err
	}

	rec := record{
		Email:     email,
		Platform:  platform,
		Timestamp: c.clock.Now().UTC().Format(TimestampLayout),
	}
	status, msg, err := c.post(ctx, rec)
	if err != nil {
		c.log.ErrorContext(ctx, "submission failed", logger.Platform(platform), logger.Error(err))
		c.view.Alert(MsgTransportError)
		return err
	}
	if status < 200 || status > 299 {
		serr := &StatusError{Code: status, Message: msg}
		c.log.WarnContext(ctx, "submission rejected", logger.StatusCode(status), logger.Error(serr))
		if msg == "" {
			msg = MsgTransportError
		}
		c.view.Alert(msg)
		return serr
	}

	c.view.ShowSuccess()
	c.downloader.Trigger(ctx, downloadURL)
	c.view.ClearEmail()
	c.clock.AfterFunc(c.successDelay, c.view.HideSuccess)
	c.log.InfoContext(ctx, "download started", logger.Platform(platform), slog.String("url", downloadURL))
	return nil
}

// downloadURL resolves the target for platform against the endpoint origin.
func (c *Client) downloadURL(platform string) (string, error) {
	if err := validator.Apply(validator.InList("platform", platform, c.platforms)); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnknownPlatform, platform, err)
	}
	ref, err := url.Parse(c.targets[platform])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTargets, err)
	}
	return c.endpoint.ResolveReference(ref).String(), nil
}

// post sends rec and returns the status code and, for failures, the
// endpoint's error message.
func (c *Client) post(ctx context.Context, rec record) (int, string, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return 0, "", errors.Join(ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return 0, "", errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp.StatusCode, "", nil
	}
	var eb struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &eb)
	return resp.StatusCode, eb.Error, nil
}
