package httpclient

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/ubports/installer-reporter/pkg/shared"
)

// Config represents HTTP client configuration options.
// Failed requests are never retried; callers decide what to do next.
type Config struct {
	Timeout   time.Duration     `json:"timeout" yaml:"timeout"`
	UserAgent string            `json:"user_agent" yaml:"user_agent"`
	Headers   map[string]string `json:"headers" yaml:"headers"`

	TLSConfig       *TLSConfig       `json:"tls" yaml:"tls"`
	AuthConfig      *AuthConfig      `json:"auth" yaml:"auth"`
	RateLimitConfig *RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
	PoolConfig      *PoolConfig      `json:"pool" yaml:"pool"`
	LogConfig       *LogConfig       `json:"log" yaml:"log"`
}

// TLSConfig defines TLS security settings
type TLSConfig struct {
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MinVersion         uint16 `json:"min_version" yaml:"min_version"`
}

// AuthConfig defines authentication settings.
// The token is sent as "<TokenHeader>: <TokenPrefix> <Token>"; an empty
// prefix sends the bare token.
type AuthConfig struct {
	Type        AuthType `json:"type" yaml:"type"`
	Token       string   `json:"token" yaml:"token"`
	TokenHeader string   `json:"token_header" yaml:"token_header"`
	TokenPrefix string   `json:"token_prefix" yaml:"token_prefix"`
}

// RateLimitConfig defines rate limiting behavior
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	BurstSize         int     `json:"burst_size" yaml:"burst_size"`
}

// PoolConfig defines connection pool settings
type PoolConfig struct {
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	DialTimeout     time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
	KeepAlive       time.Duration `json:"keep_alive" yaml:"keep_alive"`
}

// LogConfig defines logging behavior
type LogConfig struct {
	LogRequests  bool `json:"log_requests" yaml:"log_requests"`
	LogResponses bool `json:"log_responses" yaml:"log_responses"`
}

// AuthType represents different authentication methods
type AuthType string

const (
	AuthTypeNone  AuthType = "none"
	AuthTypeToken AuthType = "token"
)

// DefaultConfig returns a secure default configuration
func DefaultConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		UserAgent: fmt.Sprintf("%s/%s (%s)", shared.AppID, shared.Version, shared.BinName),
		Headers:   make(map[string]string),

		TLSConfig: &TLSConfig{
			MinVersion: tls.VersionTLS12,
		},

		AuthConfig: &AuthConfig{
			Type:        AuthTypeNone,
			TokenHeader: "Authorization",
		},

		RateLimitConfig: &RateLimitConfig{
			RequestsPerSecond: 5.0,
			BurstSize:         5,
		},

		PoolConfig: &PoolConfig{
			MaxIdleConns:    10,
			IdleConnTimeout: 90 * time.Second,
			DialTimeout:     5 * time.Second,
			KeepAlive:       30 * time.Second,
		},

		LogConfig: &LogConfig{},
	}
}

// TestConfig returns a configuration suitable for httptest servers
func TestConfig() *Config {
	config := DefaultConfig()
	config.TLSConfig.InsecureSkipVerify = true
	config.Timeout = 5 * time.Second
	config.PoolConfig.DialTimeout = time.Second
	config.RateLimitConfig = nil
	config.LogConfig.LogRequests = true
	config.LogConfig.LogResponses = true
	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be positive"}
	}

	if c.RateLimitConfig != nil {
		if c.RateLimitConfig.RequestsPerSecond <= 0 {
			return &ConfigError{Field: "RateLimitConfig.RequestsPerSecond", Message: "must be positive"}
		}
		if c.RateLimitConfig.BurstSize <= 0 {
			return &ConfigError{Field: "RateLimitConfig.BurstSize", Message: "must be positive"}
		}
	}

	if c.AuthConfig != nil && c.AuthConfig.Type == AuthTypeToken && c.AuthConfig.TokenHeader == "" {
		return &ConfigError{Field: "AuthConfig.TokenHeader", Message: "required for token auth"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}
