// Package issues opens a pre-filled "new issue" page in the user's browser.
package issues

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"runtime"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// DefaultNewIssueURL is the UBports installer issue form.
const DefaultNewIssueURL = "https://github.com/ubports/ubports-installer/issues/new"

// ErrNoBrowser is returned when neither the system opener nor a Chromium
// build could be started.
var ErrNoBrowser = cerr.New("no browser found")

// Tracker opens new-issue pages. Opener defaults to the system browser.
type Tracker struct {
	BaseURL string
	Out     io.Writer
	Opener  func(u string) error
}

// New returns a tracker for baseURL that also prints every URL to out.
func New(baseURL string, out io.Writer) *Tracker {
	if baseURL == "" {
		baseURL = DefaultNewIssueURL
	}
	return &Tracker{BaseURL: baseURL, Out: out, Opener: openBrowser}
}

// NewIssueURL builds the pre-filled form URL.
func NewIssueURL(base, title, body string) string {
	q := url.Values{}
	q.Set("title", title)
	q.Set("body", body)
	return base + "?" + q.Encode()
}

// Open shows the pre-filled issue form for title and body. A browser that
// fails to start is an error only when the URL could not be printed either.
func (t *Tracker) Open(ctx context.Context, title, body string) error {
	logger := otelzap.Ctx(ctx)
	u := NewIssueURL(t.BaseURL, title, body)

	printed := false
	if t.Out != nil {
		if _, err := fmt.Fprintf(t.Out, "Please complete your bug report at:\n%s\n", u); err == nil {
			printed = true
		}
	}

	opener := t.Opener
	if opener == nil {
		opener = openBrowser
	}
	if err := opener(u); err != nil {
		if !printed {
			logger.Warn("Could not show issue page", zap.Error(err))
			return cerr.Wrap(err, "open issue page")
		}
		logger.Warn("Browser not started, issue URL was printed", zap.Error(err))
		return nil
	}
	logger.Info("Issue page opened", zap.String("title", title), zap.Int("url_length", len(u)))
	return nil
}

// openBrowser hands u to the desktop's URL handler and falls back to a
// Chromium build found by rod's launcher.
func openBrowser(u string) error {
	if err := systemOpen(u); err == nil {
		return nil
	}
	if _, ok := launcher.LookPath(); ok {
		launcher.Open(u)
		return nil
	}
	return ErrNoBrowser
}

func systemOpen(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	case "darwin":
		cmd = exec.Command("open", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
