// pkg/reporter/types.go

package reporter

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/ubports/installer-reporter/pkg/installer"
	"github.com/ubports/installer-reporter/pkg/uir_err"
)

// LogStore returns the primary installer log. It never fails; a missing
// log is "".
type LogStore interface {
	Get(ctx context.Context) string
}

// SettingsStore persists a named setting.
type SettingsStore interface {
	Set(key, value string) error
}

// ErrorHistory lists errors recorded earlier in the run, oldest first.
type ErrorHistory interface {
	Errors() []string
}

// IssueTracker opens a pre-filled manual bug report.
type IssueTracker interface {
	Open(ctx context.Context, title, body string) error
}

// PasteService uploads text and returns a public URL.
type PasteService interface {
	Paste(ctx context.Context, content string) (string, error)
}

// State is the installer context a report describes. It is read, never
// written, by the reporter.
type State struct {
	Props   installer.Props
	CLI     installer.CLI
	History ErrorHistory
}

func (s *State) errors() []string {
	if s == nil || s.History == nil {
		return nil
	}
	return s.History.Errors()
}

// Result classifies how an installation went.
type Result string

const (
	ResultPass  Result = "PASS"
	ResultWonky Result = "WONKY"
	ResultFail  Result = "FAIL"
)

// Results lists all classifications in display order.
var Results = []Result{ResultPass, ResultWonky, ResultFail}

// ParseResult accepts any casing of PASS, WONKY or FAIL.
func ParseResult(s string) (Result, error) {
	for _, r := range Results {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", uir_err.NewValidationError("invalid result "+`"`+s+`"`, nil, "use one of PASS, WONKY or FAIL")
}

// BugFields is what the user filled in for a report.
type BugFields struct {
	Result  Result
	Title   string
	Comment string
	Error   string
}

// DebugRequest selects the optional parts of a debug bundle.
type DebugRequest struct {
	Error   string
	Comment string
}

// ReportKind tells the two prepared report shapes apart.
type ReportKind string

const (
	KindError   ReportKind = "error"
	KindSuccess ReportKind = "success"
)

// Link is a labelled URL shown next to a report.
type Link struct {
	Label string
	URL   string
}

// Display is the static presentation data of a prepared report.
type Display struct {
	Title         string
	Description   string
	Results       []Result
	DefaultResult Result
	Links         []Link
}

// ReportPayload is a prepared report: the encoded debug bundle plus how to
// present it.
type ReportPayload struct {
	Kind    ReportKind
	Body    string
	Display Display
}

// Outcome is how a submission ended.
type Outcome int

const (
	// OutcomeDeclined means the user closed the report dialog.
	OutcomeDeclined Outcome = iota
	// OutcomeSubmitted means OPEN-CUTS accepted the run.
	OutcomeSubmitted
	// OutcomeFallbackTriggered means OPEN-CUTS failed and the manual issue
	// form was opened instead.
	OutcomeFallbackTriggered
	// OutcomeBothFailed means neither destination could be reached.
	OutcomeBothFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeclined:
		return "declined"
	case OutcomeSubmitted:
		return "submitted"
	case OutcomeFallbackTriggered:
		return "fallback"
	case OutcomeBothFailed:
		return "both_failed"
	default:
		return "unknown"
	}
}

// SubmissionResult reports both attempts of a submission.
type SubmissionResult struct {
	Outcome      Outcome
	ReportID     string
	AutomatedErr error
	ManualErr    error
}

// Err combines the attempt errors when no destination was reached.
func (r SubmissionResult) Err() error {
	if r.Outcome != OutcomeBothFailed {
		return nil
	}
	var result error
	if r.AutomatedErr != nil {
		result = multierror.Append(result, r.AutomatedErr)
	}
	if r.ManualErr != nil {
		result = multierror.Append(result, r.ManualErr)
	}
	return result
}
