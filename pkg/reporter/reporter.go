// Package reporter assembles installation reports and submits them to
// OPEN-CUTS, falling back to a pre-filled GitHub issue when that fails.
package reporter

import (
	"github.com/google/uuid"
	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/opencuts"
	"github.com/ubports/installer-reporter/pkg/sysinfo"
)

// PackageInfo identifies the installer build being reported on.
type PackageInfo struct {
	Version     string
	Package     string
	Environment string
}

// Options wires a Reporter to its collaborators. Paste may be nil, in
// which case manual reports ask the user to attach the log themselves.
type Options struct {
	OSInfo   sysinfo.Provider
	Logs     LogStore
	Settings SettingsStore
	Prompter interaction.Prompter
	Backend  opencuts.Backend
	Issues   IssueTracker
	Paste    PasteService
	Package  PackageInfo

	OpenCutsURL string
	IssuesURL   string
}

// Reporter holds the collaborators; per-report context is passed as State.
type Reporter struct {
	osInfo   sysinfo.Provider
	logs     LogStore
	settings SettingsStore
	prompter interaction.Prompter
	backend  opencuts.Backend
	issues   IssueTracker
	paste    PasteService
	pkg      PackageInfo

	openCutsURL string
	issuesURL   string
	newID       func() string
}

// New creates a Reporter.
func New(opts Options) *Reporter {
	openCutsURL := opts.OpenCutsURL
	if openCutsURL == "" {
		openCutsURL = opencuts.DefaultURL
	}
	return &Reporter{
		osInfo:      opts.OSInfo,
		logs:        opts.Logs,
		settings:    opts.Settings,
		prompter:    opts.Prompter,
		backend:     opts.Backend,
		issues:      opts.Issues,
		paste:       opts.Paste,
		pkg:         opts.Package,
		openCutsURL: openCutsURL,
		issuesURL:   opts.IssuesURL,
		newID:       uuid.NewString,
	}
}
