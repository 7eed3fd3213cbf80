// Package paste uploads logs to a pastebin so a bug report can link them.
package paste

import (
	"context"
	"net/url"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/ubports/installer-reporter/pkg/httpclient"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Service posts to a paste.ubuntu.com style form endpoint. The paste URL is
// where the form submission redirects to.
type Service struct {
	client   *httpclient.Client
	endpoint string
	poster   string
}

// New returns a paste service for endpoint.
func New(client *httpclient.Client, endpoint, poster string) *Service {
	return &Service{client: client, endpoint: endpoint, poster: poster}
}

// Paste uploads content and returns the public URL.
func (s *Service) Paste(ctx context.Context, content string) (string, error) {
	logger := otelzap.Ctx(ctx)
	if strings.TrimSpace(content) == "" {
		return "", cerr.New("nothing to paste")
	}

	form := url.Values{
		"poster":     {s.poster},
		"syntax":     {"text"},
		"expiration": {"year"},
		"content":    {content},
	}
	final, _, err := s.client.PostForm(ctx, s.endpoint, form)
	if err != nil {
		var status *httpclient.StatusError
		if cerr.As(err, &status) || ctx.Err() != nil {
			return "", cerr.Wrap(err, "upload paste")
		}
		return "", uir_err.NewNetworkError("paste service is unreachable", err)
	}
	if strings.TrimRight(final, "/") == strings.TrimRight(s.endpoint, "/") {
		return "", cerr.Newf("paste service at %s did not redirect to a paste", s.endpoint)
	}

	logger.Info("Log uploaded", zap.String("url", final), zap.Int("bytes", len(content)))
	return final, nil
}
