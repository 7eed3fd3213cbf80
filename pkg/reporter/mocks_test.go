package reporter

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/opencuts"
	"github.com/ubports/installer-reporter/pkg/sysinfo"
)

type mockOSInfo struct{ mock.Mock }

func (m *mockOSInfo) OSInfo(ctx context.Context) (*sysinfo.OSInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*sysinfo.OSInfo)
	return info, args.Error(1)
}

type mockLogs struct{ mock.Mock }

func (m *mockLogs) Get(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

type mockSettings struct{ mock.Mock }

func (m *mockSettings) Set(key, value string) error {
	return m.Called(key, value).Error(0)
}

type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) Prompt(ctx context.Context, form interaction.Form) (interaction.Answers, error) {
	args := m.Called(ctx, form)
	answers, _ := args.Get(0).(interaction.Answers)
	return answers, args.Error(1)
}

type mockBackend struct{ mock.Mock }

func (m *mockBackend) SmartRun(ctx context.Context, testID, systemID, tag string, run opencuts.Run) error {
	return m.Called(ctx, testID, systemID, tag, run).Error(0)
}

type mockIssues struct{ mock.Mock }

func (m *mockIssues) Open(ctx context.Context, title, body string) error {
	return m.Called(ctx, title, body).Error(0)
}

type mockPaste struct{ mock.Mock }

func (m *mockPaste) Paste(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

type errorList []string

func (e errorList) Errors() []string { return e }

var testOSInfo = &sysinfo.OSInfo{
	Distro:      "distro",
	Release:     "release",
	Codename:    "codename",
	Platform:    "platform",
	Kernel:      "kernel",
	Arch:        "arch",
	Build:       "build",
	ServicePack: "servicepack",
}

type fixture struct {
	os       *mockOSInfo
	logs     *mockLogs
	settings *mockSettings
	prompter *mockPrompter
	backend  *mockBackend
	issues   *mockIssues
	paste    *mockPaste
	reporter *Reporter
}

func newFixture() *fixture {
	f := &fixture{
		os:       &mockOSInfo{},
		logs:     &mockLogs{},
		settings: &mockSettings{},
		prompter: &mockPrompter{},
		backend:  &mockBackend{},
		issues:   &mockIssues{},
		paste:    &mockPaste{},
	}
	f.os.On("OSInfo", mock.Anything).Return(testOSInfo, nil).Maybe()
	f.reporter = New(Options{
		OSInfo:    f.os,
		Logs:      f.logs,
		Settings:  f.settings,
		Prompter:  f.prompter,
		Backend:   f.backend,
		Issues:    f.issues,
		Paste:     f.paste,
		Package:   PackageInfo{Version: "0.8.9"},
		IssuesURL: "https://github.com/ubports/ubports-installer/issues/new",
	})
	f.reporter.newID = func() string { return "report-1" }
	return f
}
