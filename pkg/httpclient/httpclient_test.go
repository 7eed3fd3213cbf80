// pkg/httpclient/httpclient_test.go

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{name: "default config", config: DefaultConfig()},
		{name: "nil config uses default", config: nil},
		{
			name:    "invalid timeout",
			config:  &Config{Timeout: -1 * time.Second},
			wantErr: true,
			errMsg:  "invalid timeout",
		},
		{
			name: "zero rate",
			config: &Config{
				Timeout:         time.Second,
				RateLimitConfig: &RateLimitConfig{RequestsPerSecond: 0, BurstSize: 1},
			},
			wantErr: true,
			errMsg:  "RequestsPerSecond",
		},
		{
			name: "token auth without header",
			config: &Config{
				Timeout:    time.Second,
				AuthConfig: &AuthConfig{Type: AuthTypeToken, Token: "x"},
			},
			wantErr: true,
			errMsg:  "TokenHeader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client.httpClient)
		})
	}
}

func TestPostJSONSendsAuthAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "ubports-installer")

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer server.Close()

	cfg := TestConfig()
	cfg.AuthConfig = &AuthConfig{Type: AuthTypeToken, Token: "secret", TokenHeader: "Authorization"}
	client, err := NewClient(cfg)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, client.PostJSON(context.Background(), server.URL, map[string]string{"msg": "hi"}, &out))
	assert.Equal(t, "hi", out["echo"])
}

func TestDoReturnsStatusError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client, err := NewClient(TestConfig())
	require.NoError(t, err)

	err = client.PostJSON(context.Background(), server.URL, map[string]string{}, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "upstream down")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "requests are never retried")
}

func TestPostFormFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "log content", r.PostForm.Get("content"))
		http.Redirect(w, r, "/p/abc123/", http.StatusFound)
	})
	mux.HandleFunc("/p/abc123/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("paste page"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(TestConfig())
	require.NoError(t, err)

	final, body, err := client.PostForm(context.Background(), server.URL+"/", url.Values{"content": {"log content"}})
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/p/abc123/", final)
	assert.Equal(t, "paste page", string(body))
}

func TestGetHonoursCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := NewClient(DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Get(ctx, server.URL)
	assert.Error(t, err)
}
