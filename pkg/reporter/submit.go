// pkg/reporter/submit.go

package reporter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/ubports/installer-reporter/pkg/opencuts"
	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/telemetry"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ignoredErrorsLog names the run log listing earlier, non-fatal errors.
const ignoredErrorsLog = "ignored errors"

var (
	errNoBackend = cerr.New("no OPEN-CUTS backend configured")
	errNoIssues  = cerr.New("no issue tracker configured")
)

// Report asks the user whether and what to report, then sends it. A failed
// or dismissed dialog is logged and yields OutcomeDeclined.
func (r *Reporter) Report(rc *uir_io.RuntimeContext, st *State, result Result, errMsg string) SubmissionResult {
	logger := otelzap.Ctx(rc.Ctx)

	var payload ReportPayload
	if errMsg != "" {
		payload = r.PrepareErrorReport(rc, st)
	} else {
		payload = r.PrepareSuccessReport(rc, st)
	}

	if r.prompter == nil {
		logger.Warn("No prompt available, report not sent")
		return r.finish(rc.Ctx, SubmissionResult{Outcome: OutcomeDeclined, ReportID: r.newID()})
	}
	answers, err := r.prompter.Prompt(rc.Ctx, payload.Form(result))
	if errors.Is(err, uir_err.ErrPromptDeclined) {
		logger.Info("Report dialog declined")
		return r.finish(rc.Ctx, SubmissionResult{Outcome: OutcomeDeclined, ReportID: r.newID()})
	}
	if err != nil {
		logger.Warn("Report dialog failed, report not sent", zap.Error(err))
		return r.finish(rc.Ctx, SubmissionResult{Outcome: OutcomeDeclined, ReportID: r.newID()})
	}
	if len(answers) == 0 {
		logger.Info("Report dialog closed without submitting")
		return r.finish(rc.Ctx, SubmissionResult{Outcome: OutcomeDeclined, ReportID: r.newID()})
	}

	fields := BugFields{
		Result:  result,
		Title:   answers["title"],
		Comment: answers["comment"],
		Error:   errMsg,
	}
	if v := answers["result"]; v != "" {
		if parsed, err := ParseResult(v); err == nil {
			fields.Result = parsed
		}
	}
	return r.SendBugReport(rc, st, fields)
}

// SendBugReport tries OPEN-CUTS once and, if that fails, opens a manual
// issue report once. Neither failure is returned as an error; both are
// recorded in the result.
func (r *Reporter) SendBugReport(rc *uir_io.RuntimeContext, st *State, fields BugFields) SubmissionResult {
	res := SubmissionResult{ReportID: r.newID()}
	ctx, span := telemetry.Start(rc.Ctx, "reporter.SendBugReport",
		attribute.String("report_id", res.ReportID),
		attribute.String("result", string(fields.Result)))
	defer span.End()
	logger := otelzap.Ctx(ctx)

	err := r.sendOpenCutsRun(ctx, st, "", fields)
	if err == nil {
		res.Outcome = OutcomeSubmitted
		return r.finish(ctx, res)
	}
	res.AutomatedErr = err
	logger.Warn("OPEN-CUTS submission failed, falling back to manual report",
		zap.String("report_id", res.ReportID),
		zap.Bool("network", uir_err.IsNetworkError(err)),
		zap.Error(err))

	if err := r.openManualReport(ctx, st, fields); err != nil {
		res.ManualErr = err
		res.Outcome = OutcomeBothFailed
		logger.Error("Manual report failed", zap.String("report_id", res.ReportID), zap.Error(err))
		return r.finish(ctx, res)
	}
	res.Outcome = OutcomeFallbackTriggered
	return r.finish(ctx, res)
}

// SendOpenCutsRun submits a run built from the current log and error
// history. Backend failures are returned so callers can fall back.
func (r *Reporter) SendOpenCutsRun(rc *uir_io.RuntimeContext, st *State, sessionID string, fields BugFields) error {
	return r.sendOpenCutsRun(rc.Ctx, st, sessionID, fields)
}

func (r *Reporter) sendOpenCutsRun(ctx context.Context, st *State, sessionID string, fields BugFields) error {
	if r.backend == nil {
		return errNoBackend
	}
	run := NewRun(r.logContent(ctx), st.errors(), r.pkg, fields)
	tag := opencuts.RunTag(sessionID, r.pkg.Version)

	otelzap.Ctx(ctx).Info("Submitting OPEN-CUTS run",
		zap.String("tag", tag), zap.String("result", run.Result), zap.Int("logs", len(run.Logs)))

	if err := r.backend.SmartRun(ctx, opencuts.TestCaseID, opencuts.TestSuiteID, tag, run); err != nil {
		return cerr.Wrap(err, "submit OPEN-CUTS run")
	}
	return nil
}

// NewRun builds the OPEN-CUTS run record. The primary log is always
// attached; earlier errors are attached only when there are any.
func NewRun(logContent string, history []string, pkg PackageInfo, fields BugFields) opencuts.Run {
	logs := []opencuts.Log{{Name: shared.PrimaryLogName, Content: logContent}}
	if len(history) > 0 {
		logs = append(logs, opencuts.Log{Name: ignoredErrorsLog, Content: strings.Join(history, "\n\n")})
	}
	return opencuts.Run{
		Combination: []opencuts.Combination{
			{Variable: "Environment", Value: pkg.Environment},
			{Variable: "Package", Value: pkg.Package},
		},
		Comment: fields.Comment,
		Logs:    logs,
		Result:  string(fields.Result),
	}
}

func (r *Reporter) openManualReport(ctx context.Context, st *State, fields BugFields) error {
	if r.issues == nil {
		return errNoIssues
	}
	return r.issues.Open(ctx, fields.Title, r.manualBody(ctx, st, fields))
}

// manualBody is the decoded debug bundle followed by the result and a link
// to the uploaded log.
func (r *Reporter) manualBody(ctx context.Context, st *State, fields BugFields) string {
	var b strings.Builder
	b.WriteString(r.debugText(ctx, st, DebugRequest{Error: fields.Error, Comment: fields.Comment}))
	if fields.Result != "" {
		fmt.Fprintf(&b, "**Result:** %s\n\n", cases.Title(language.English).String(string(fields.Result)))
	}
	b.WriteString("**Log:** ")
	b.WriteString(r.logLink(ctx))
	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) logLink(ctx context.Context) string {
	content := r.logContent(ctx)
	if content == "" {
		return "no log was recorded"
	}
	if r.paste == nil {
		return "please attach " + shared.PrimaryLogName
	}
	u, err := r.paste.Paste(ctx, content)
	if err != nil {
		otelzap.Ctx(ctx).Warn("Log upload failed", zap.Error(err))
		return "upload failed, please attach " + shared.PrimaryLogName
	}
	return u
}

func (r *Reporter) logContent(ctx context.Context) string {
	if r.logs == nil {
		return ""
	}
	return r.logs.Get(ctx)
}

func (r *Reporter) finish(ctx context.Context, res SubmissionResult) SubmissionResult {
	telemetry.RecordSubmission(ctx, res.Outcome.String(), res.ReportID)
	otelzap.Ctx(ctx).Info("Report finished",
		zap.String("report_id", res.ReportID), zap.String("outcome", res.Outcome.String()))
	return res
}
