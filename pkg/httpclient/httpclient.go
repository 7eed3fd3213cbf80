// pkg/httpclient/httpclient.go

package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 4 << 10

// Client is a thin net/http wrapper adding auth headers, rate limiting and
// request logging.
type Client struct {
	httpClient *http.Client
	config     *Config
	limiter    *rate.Limiter
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// NewClient builds a client from config; nil means DefaultConfig.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, cerr.Wrap(err, "invalid timeout or limits")
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if config.TLSConfig != nil {
		transport.TLSClientConfig = &tls.Config{
			MinVersion: config.TLSConfig.MinVersion,
			// #nosec G402 - only set by TestConfig
			InsecureSkipVerify: config.TLSConfig.InsecureSkipVerify,
		}
	}
	if p := config.PoolConfig; p != nil {
		transport.MaxIdleConns = p.MaxIdleConns
		transport.IdleConnTimeout = p.IdleConnTimeout
		transport.DialContext = (&net.Dialer{
			Timeout:   p.DialTimeout,
			KeepAlive: p.KeepAlive,
		}).DialContext
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		config: config,
	}
	if rl := config.RateLimitConfig; rl != nil {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c, nil
}

// Do sends req after applying headers and waiting for the rate limiter.
// Non-2xx responses are returned as *StatusError with the body consumed.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	logger := otelzap.Ctx(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, cerr.Wrap(err, "rate limiter")
		}
	}

	req = req.WithContext(ctx)
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	if a := c.config.AuthConfig; a != nil && a.Type == AuthTypeToken && a.Token != "" {
		value := a.Token
		if a.TokenPrefix != "" {
			value = a.TokenPrefix + " " + a.Token
		}
		req.Header.Set(a.TokenHeader, value)
	}

	if c.config.LogConfig != nil && c.config.LogConfig.LogRequests {
		logger.Debug("HTTP request", zap.String("method", req.Method), zap.String("url", req.URL.Redacted()))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, cerr.Wrapf(err, "%s %s", req.Method, req.URL.Redacted())
	}

	if c.config.LogConfig != nil && c.config.LogConfig.LogResponses {
		logger.Debug("HTTP response", zap.Int("status", resp.StatusCode), zap.String("url", resp.Request.URL.Redacted()))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// PostJSON marshals in, posts it and decodes the response into out (if non-nil).
func (c *Client) PostJSON(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return cerr.Wrap(err, "encode request")
	}
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return cerr.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return cerr.Wrap(err, "decode response")
	}
	return nil
}

// PostForm posts url-encoded values and returns the final URL after
// redirects together with the response body.
func (c *Client) PostForm(ctx context.Context, endpoint string, values url.Values) (string, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return "", nil, cerr.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, cerr.Wrap(err, "read response")
	}
	return resp.Request.URL.String(), body, nil
}

// Get fetches endpoint and returns the body.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, cerr.Wrap(err, "build request")
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerr.Wrap(err, "read response")
	}
	return body, nil
}
