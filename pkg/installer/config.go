// pkg/installer/config.go

package installer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultConfigBaseURL serves the published v2 device configs as raw YAML.
const DefaultConfigBaseURL = "https://raw.githubusercontent.com/ubports/installer-configs/master/v2/devices/"

// Getter is the HTTP surface the fetcher needs.
type Getter interface {
	Get(ctx context.Context, endpoint string) ([]byte, error)
}

// ParseConfig decodes a device config and checks it names a device.
func ParseConfig(data []byte) (*DeviceConfig, error) {
	var cfg DeviceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, cerr.Wrap(err, "decode device config")
	}
	if cfg.Codename == "" {
		return nil, cerr.Wrap(uir_err.ErrNoDevice, "device config")
	}
	return &cfg, nil
}

// LoadConfigFile reads a local config override.
func LoadConfigFile(path string) (*DeviceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.Wrapf(err, "read config file %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, cerr.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// ConfigFetcher downloads published device configs and caches them for
// the life of the process.
type ConfigFetcher struct {
	client  Getter
	baseURL string

	mu    sync.Mutex
	cache map[string]*DeviceConfig
}

// NewConfigFetcher returns a fetcher; an empty baseURL means DefaultConfigBaseURL.
func NewConfigFetcher(client Getter, baseURL string) *ConfigFetcher {
	if baseURL == "" {
		baseURL = DefaultConfigBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &ConfigFetcher{
		client:  client,
		baseURL: baseURL,
		cache:   make(map[string]*DeviceConfig),
	}
}

// Fetch returns the config for codename, hitting the network at most once
// per codename on success.
func (f *ConfigFetcher) Fetch(ctx context.Context, codename string) (*DeviceConfig, error) {
	logger := otelzap.Ctx(ctx)
	if codename == "" {
		return nil, uir_err.ErrNoDevice
	}

	f.mu.Lock()
	if cfg, ok := f.cache[codename]; ok {
		f.mu.Unlock()
		return cfg, nil
	}
	f.mu.Unlock()

	endpoint := fmt.Sprintf("%s%s.yml", f.baseURL, codename)
	logger.Debug("Fetching device config", zap.String("codename", codename), zap.String("url", endpoint))

	data, err := f.client.Get(ctx, endpoint)
	if err != nil {
		return nil, cerr.Wrapf(err, "fetch config for %s", codename)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, cerr.Wrapf(err, "config for %s", codename)
	}

	f.mu.Lock()
	f.cache[codename] = cfg
	f.mu.Unlock()
	return cfg, nil
}

// Resolve builds Props for a detected device. A local file wins over the
// published config; a failed lookup leaves Config nil and is only logged.
func Resolve(ctx context.Context, fetcher *ConfigFetcher, cli CLI, device string, osIndex int) Props {
	logger := otelzap.Ctx(ctx)
	props := Props{Device: device}

	switch {
	case cli.File != "":
		cfg, err := LoadConfigFile(cli.File)
		if err != nil {
			logger.Warn("Local config file unusable", zap.String("file", cli.File), zap.Error(err))
			return props
		}
		props.Config = cfg
	case device != "" && fetcher != nil:
		cfg, err := fetcher.Fetch(ctx, device)
		if err != nil {
			logger.Warn("Device config unavailable", zap.String("device", device), zap.Error(err))
			return props
		}
		props.Config = cfg
	default:
		return props
	}

	props.OS = props.SelectOS(osIndex)
	return props
}
