// Package cmd_helpers wires the report pipeline together for the uir
// commands so every command builds it the same way.
package cmd_helpers

import (
	"context"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/ubports/installer-reporter/pkg/config"
	"github.com/ubports/installer-reporter/pkg/errtrack"
	"github.com/ubports/installer-reporter/pkg/httpclient"
	"github.com/ubports/installer-reporter/pkg/installer"
	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/issues"
	"github.com/ubports/installer-reporter/pkg/logger"
	"github.com/ubports/installer-reporter/pkg/opencuts"
	"github.com/ubports/installer-reporter/pkg/paste"
	"github.com/ubports/installer-reporter/pkg/reporter"
	"github.com/ubports/installer-reporter/pkg/settings"
	"github.com/ubports/installer-reporter/pkg/sysinfo"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReporterContainer holds the pipeline and the stores it reads from.
type ReporterContainer struct {
	Config   *config.Config
	Settings *settings.Store
	Fetcher  *installer.ConfigFetcher
	Errors   *errtrack.Tracker
	Backend  *opencuts.Breaker
	Reporter *reporter.Reporter
}

// StateOptions describes the installation a report is about.
type StateOptions struct {
	Device      string
	OSName      string
	OSIndex     int
	ConfigFile  string
	PriorErrors []string
}

// NewReporterContainer builds the pipeline from cfg. Prompts read from in
// and write to out; the issue URL is printed to out as well.
func NewReporterContainer(rc *uir_io.RuntimeContext, cfg *config.Config, in io.Reader, out io.Writer) (*ReporterContainer, error) {
	log := rc.Log.Named("wiring")

	store, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		return nil, cerr.Wrap(err, "open settings")
	}

	token := store.Get(settings.OpenCutsTokenKey)
	if token == "" {
		token = cfg.OpenCuts.Token
	}
	client, err := opencuts.NewClient(opencuts.Config{
		URL:               cfg.OpenCuts.URL,
		Token:             token,
		Timeout:           cfg.OpenCuts.Timeout,
		RequestsPerSecond: cfg.OpenCuts.RequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}
	backend := opencuts.NewBreaker(client, opencuts.BreakerSettings{})

	web, err := httpclient.NewClient(httpclient.DefaultConfig())
	if err != nil {
		return nil, cerr.Wrap(err, "create http client")
	}
	fetcher := installer.NewConfigFetcher(web, cfg.Installer.ConfigBaseURL)

	var pasteSvc reporter.PasteService
	if cfg.Paste.Enabled {
		pasteSvc = paste.New(web, cfg.Paste.URL, cfg.Paste.Poster)
	}

	pkg := reporter.PackageInfo{
		Version:     cfg.Installer.Version,
		Package:     cfg.Installer.Package,
		Environment: reporter.PackagingEnvironment(cfg.Installer.Package),
	}
	log.Debug("Reporter wired",
		zap.String("opencuts", cfg.OpenCuts.URL),
		zap.Bool("token", token != ""),
		zap.Bool("paste", cfg.Paste.Enabled),
		zap.String("environment", pkg.Environment))

	return &ReporterContainer{
		Config:   cfg,
		Settings: store,
		Fetcher:  fetcher,
		Errors:   errtrack.New(),
		Backend:  backend,
		Reporter: reporter.New(reporter.Options{
			OSInfo:      sysinfo.NewDetector(),
			Logs:        logger.NewFileStore(),
			Settings:    store,
			Prompter:    interaction.NewTerminalPrompter(in, out),
			Backend:     backend,
			Issues:      issues.New(cfg.Issues.URL, out),
			Paste:       pasteSvc,
			Package:     pkg,
			OpenCutsURL: cfg.OpenCuts.URL,
			IssuesURL:   cfg.Issues.URL,
		}),
	}, nil
}

// State resolves the device described by o and records its prior errors.
func (c *ReporterContainer) State(ctx context.Context, o StateOptions) *reporter.State {
	cli := installer.CLI{File: o.ConfigFile}
	props := installer.Resolve(ctx, c.Fetcher, cli, o.Device, o.OSIndex)
	if o.OSName != "" {
		props.OS = &installer.OSInfo{Name: o.OSName}
	}
	for _, e := range o.PriorErrors {
		c.Errors.Add(e)
	}
	otelzap.Ctx(ctx).Debug("Installer state resolved",
		zap.String("codename", props.Codename()),
		zap.Int("prior_errors", c.Errors.Len()))
	return &reporter.State{Props: props, CLI: cli, History: c.Errors}
}
