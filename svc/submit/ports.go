package submit

import (
	"context"
	"net/http"
	"time"
)

// View is the part of the page the client touches.
type View interface {
	ShowSuccess()
	HideSuccess()
	ClearEmail()
	Alert(msg string)
}

// Downloader starts a download. Its outcome is never reported back.
type Downloader interface {
	Trigger(ctx context.Context, url string)
}

// Clock schedules the success notice removal.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type nopView struct{}

func (nopView) ShowSuccess() {}
func (nopView) HideSuccess() {}
func (nopView) ClearEmail()  {}
func (nopView) Alert(string) {}

type nopDownloader struct{}

func (nopDownloader) Trigger(context.Context, string) {}
