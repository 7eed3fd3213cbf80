// Package opencuts submits test runs to an OPEN-CUTS instance.
package opencuts

import (
	"context"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-version"
	"github.com/ubports/installer-reporter/pkg/httpclient"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	DefaultURL = "https://ubports.open-cuts.org"

	// TestCaseID and TestSuiteID identify the installer test on the
	// UBports instance.
	TestCaseID  = "5e9d746c6346e112514cfec7"
	TestSuiteID = "5e9d75406346e112514cfeca"
)

const smartRunMutation = `mutation smartRun($testId: ID!, $systemId: ID!, $tag: String!, $run: RunInput!) {
  smartRun(testId: $testId, systemId: $systemId, tag: $tag, run: $run) {
    id
  }
}`

// ErrNoToken is returned when a run is submitted without an API token.
var ErrNoToken = cerr.New("no OPEN-CUTS token configured")

// Backend is anything that can submit a run.
type Backend interface {
	SmartRun(ctx context.Context, testID, systemID, tag string, run Run) error
}

// Config configures Client.
type Config struct {
	URL               string
	Token             string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client talks GraphQL to OPEN-CUTS.
type Client struct {
	endpoint string
	hasToken bool
	http     *httpclient.Client
}

// NewClient builds a client for cfg.URL, defaulting to DefaultURL.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.URL, "/")
	if base == "" {
		base = DefaultURL
	}

	hc := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}
	if cfg.RequestsPerSecond > 0 {
		hc.RateLimitConfig = &httpclient.RateLimitConfig{RequestsPerSecond: cfg.RequestsPerSecond, BurstSize: 1}
	} else {
		hc.RateLimitConfig = nil
	}
	hc.AuthConfig = &httpclient.AuthConfig{
		Type:        httpclient.AuthTypeToken,
		Token:       cfg.Token,
		TokenHeader: "Authorization",
	}

	client, err := httpclient.NewClient(hc)
	if err != nil {
		return nil, cerr.Wrap(err, "create OPEN-CUTS http client")
	}
	return &Client{
		endpoint: base + "/graphql",
		hasToken: cfg.Token != "",
		http:     client,
	}, nil
}

// SmartRun lets the server pick or create a run matching tag and stores run
// in it.
func (c *Client) SmartRun(ctx context.Context, testID, systemID, tag string, run Run) error {
	logger := otelzap.Ctx(ctx)
	if !c.hasToken {
		return ErrNoToken
	}

	req := graphQLRequest{
		Query: smartRunMutation,
		Variables: map[string]any{
			"testId":   testID,
			"systemId": systemID,
			"tag":      tag,
			"run":      run,
		},
	}

	var resp smartRunResponse
	if err := c.http.PostJSON(ctx, c.endpoint, req, &resp); err != nil {
		var status *httpclient.StatusError
		if cerr.As(err, &status) || ctx.Err() != nil {
			return cerr.Wrap(err, "smartRun request")
		}
		return uir_err.NewNetworkError("OPEN-CUTS is unreachable", err,
			"check your internet connection", "retry with `uir report send`")
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return cerr.Newf("smartRun rejected: %s", strings.Join(msgs, "; "))
	}

	id := ""
	if resp.Data.SmartRun != nil {
		id = resp.Data.SmartRun.ID
	}
	logger.Info("OPEN-CUTS run submitted", zap.String("run_id", id), zap.String("tag", tag), zap.String("result", run.Result))
	return nil
}

// RunTag returns the tag a run is filed under: the session identifier when
// there is one, otherwise the installer version in canonical form.
func RunTag(sessionID, installerVersion string) string {
	if sessionID != "" {
		return sessionID
	}
	v, err := version.NewVersion(installerVersion)
	if err != nil {
		return installerVersion
	}
	return v.String()
}
