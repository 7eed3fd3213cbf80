// pkg/config/config.go

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ubports/installer-reporter/pkg/cli"
	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/ubports/installer-reporter/pkg/xdg"
)

const (
	DefaultOpenCutsURL = "https://ubports.open-cuts.org"
	DefaultIssuesURL   = "https://github.com/ubports/ubports-installer/issues/new"
	DefaultPasteURL    = "https://paste.ubuntu.com/"
	DefaultPackage     = "source"
)

// Config holds everything the reporter needs from the environment.
type Config struct {
	LogLevel  string          `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Debug     bool            `mapstructure:"debug"`
	OpenCuts  OpenCutsConfig  `mapstructure:"opencuts"`
	Issues    IssuesConfig    `mapstructure:"issues"`
	Paste     PasteConfig     `mapstructure:"paste"`
	Installer InstallerConfig `mapstructure:"installer"`
	Settings  SettingsConfig  `mapstructure:"settings"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type OpenCutsConfig struct {
	URL               string        `mapstructure:"url" validate:"required,url"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gte=0"`
	// Token is normally written by `uir self token` into the settings file.
	Token string `mapstructure:"token"`
}

type IssuesConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

type PasteConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url" validate:"omitempty,url"`
	Poster  string `mapstructure:"poster"`
}

type InstallerConfig struct {
	Version       string `mapstructure:"version" validate:"required"`
	Package       string `mapstructure:"package"`
	ConfigBaseURL string `mapstructure:"config_base_url" validate:"omitempty,url"`
}

type SettingsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// LoadOptions selects the files Load reads. Empty fields use the XDG defaults.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string
}

// SetDefaults registers every key so env overrides work for all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("debug", false)
	v.SetDefault("opencuts.url", DefaultOpenCutsURL)
	v.SetDefault("opencuts.timeout", 30*time.Second)
	v.SetDefault("opencuts.requests_per_second", 2.0)
	v.SetDefault("opencuts.token", "")
	v.SetDefault("issues.url", DefaultIssuesURL)
	v.SetDefault("paste.enabled", true)
	v.SetDefault("paste.url", DefaultPasteURL)
	v.SetDefault("paste.poster", shared.AppID)
	v.SetDefault("installer.version", shared.Version)
	v.SetDefault("installer.package", DefaultPackage)
	v.SetDefault("installer.config_base_url", "")
	v.SetDefault("settings.path", xdg.ConfigPath("settings.yaml"))
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.dir", xdg.StatePath(""))
}

// Load reads .env, config.yaml and UIR_* variables into v and decodes the
// result. A missing default file is not an error; a missing explicit one is.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if opts.EnvFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, cerr.Wrapf(err, "load env file %s", envFile)
		}
	}

	SetDefaults(v)
	cli.SetViperEnvPrefix(v, shared.EnvPrefix)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, cerr.Wrapf(err, "read config %s", opts.ConfigFile)
		}
	} else {
		path := xdg.ConfigPath("config.yaml")
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, cerr.Wrapf(err, "read config %s", path)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cerr.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cerr.Wrap(err, "validate config")
	}
	var result error
	for _, fe := range verrs {
		result = multierror.Append(result, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return uir_err.NewValidationError("invalid configuration", result,
		"check config.yaml and UIR_* environment variables")
}
