// pkg/reporter/prepare.go

package reporter

import (
	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/uir_io"
)

// PrepareErrorReport shapes a report for a failed installation. The bundle
// carries no error or comment; those are added when the report is sent.
func (r *Reporter) PrepareErrorReport(rc *uir_io.RuntimeContext, st *State) ReportPayload {
	return ReportPayload{
		Kind: KindError,
		Body: r.DebugInfo(rc, st, DebugRequest{}),
		Display: Display{
			Title: "Installation failed",
			Description: "Please help us improve the installer by reporting this failure. " +
				"The report includes the information below and your installer log.",
			Results:       []Result{ResultFail, ResultWonky},
			DefaultResult: ResultFail,
			Links:         r.links(),
		},
	}
}

// PrepareSuccessReport shapes a report for a finished installation.
func (r *Reporter) PrepareSuccessReport(rc *uir_io.RuntimeContext, st *State) ReportPayload {
	return ReportPayload{
		Kind: KindSuccess,
		Body: r.DebugInfo(rc, st, DebugRequest{}),
		Display: Display{
			Title: "Installation complete",
			Description: "Let us know how it went. Reports help the UBports team " +
				"keep track of which devices work.",
			Results:       []Result{ResultPass, ResultWonky, ResultFail},
			DefaultResult: ResultPass,
			Links:         r.links(),
		},
	}
}

func (r *Reporter) links() []Link {
	return []Link{
		{Label: "OPEN-CUTS", URL: r.openCutsURL},
		{Label: "Issue tracker", URL: r.issuesURL},
	}
}

// Form turns a payload into the report dialog. The decoded bundle is shown
// below the description so the user sees exactly what is sent.
func (p ReportPayload) Form(preselected Result) interaction.Form {
	def := p.Display.DefaultResult
	for _, r := range p.Display.Results {
		if r == preselected {
			def = preselected
		}
	}

	options := make([]string, 0, len(p.Display.Results))
	for _, r := range p.Display.Results {
		options = append(options, string(r))
	}

	desc := p.Display.Description
	if body, err := DecodeDebugInfo(p.Body); err == nil {
		desc += "\n\n" + body
	}
	for _, l := range p.Display.Links {
		desc += "- [" + l.Label + "](" + l.URL + ")\n"
	}

	return interaction.Form{
		Title:       p.Display.Title,
		Description: desc,
		Confirm:     "Send a report?",
		Fields: []interaction.Field{
			{Name: "result", Label: "Result", Options: options, Default: string(def)},
			{Name: "title", Label: "Title", Required: true},
			{Name: "comment", Label: "Comment (optional)"},
		},
	}
}
