package submit

import (
	"log/slog"
	"time"
)

type Option func(*Client)

func WithView(v View) Option {
	return func(c *Client) {
		if v != nil {
			c.view = v
		}
	}
}

func WithDownloader(d Downloader) Option {
	return func(c *Client) {
		if d != nil {
			c.downloader = d
		}
	}
}

func WithHTTPClient(h HTTPDoer) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithClock(clk Clock) Option {
	return func(c *Client) {
		if clk != nil {
			c.clock = clk
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSuccessDelay sets how long the success notice stays visible.
func WithSuccessDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.successDelay = d
		}
	}
}
