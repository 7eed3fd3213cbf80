// cmd/report/report.go

package report

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cli"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/reporter"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReportCmd runs the interactive report dialog.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Ask the user for a report and submit it",
	Long: `Show the report dialog for an installer run and submit the answers to
OPEN-CUTS. If OPEN-CUTS cannot be reached a pre-filled GitHub issue is opened.

Examples:
  uir report --device bacon --result PASS
  uir report --device bacon --error "flashing boot failed" --prior-error "adb: retrying"
  uir report --file ./bacon.yml --result WONKY`,
	Args: cobra.NoArgs,
	RunE: uir_cli.Wrap(runReport),
}

func init() {
	cli.AddStringFlag(ReportCmd, "result", "r", string(reporter.ResultPass), "Preselected result: PASS, WONKY or FAIL", false)
	cli.AddStringFlag(ReportCmd, "error", "e", "", "Error that ended the installation", false)
	cmd_helpers.AddStateFlags(ReportCmd)

	ReportCmd.AddCommand(SendCmd)
}

func runReport(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	result, err := reporter.ParseResult(cli.GetStringOrEmpty(cmd, "result"))
	if err != nil {
		return err
	}

	c, err := newContainer(rc, cmd)
	if err != nil {
		return err
	}
	st := c.State(rc.Ctx, cmd_helpers.StateOptionsFromFlags(cmd))

	res := c.Reporter.Report(rc, st, result, cli.GetStringOrEmpty(cmd, "error"))
	logger.Info("Report dialog finished",
		zap.String("report_id", res.ReportID),
		zap.String("outcome", res.Outcome.String()))

	printOutcome(cmd.OutOrStdout(), res)
	return res.Err()
}

func newContainer(rc *uir_io.RuntimeContext, cmd *cobra.Command) (*cmd_helpers.ReporterContainer, error) {
	cfg, err := cmd_helpers.ConfigFrom(rc.Ctx)
	if err != nil {
		return nil, err
	}
	return cmd_helpers.NewReporterContainer(rc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

func printOutcome(out io.Writer, res reporter.SubmissionResult) {
	switch res.Outcome {
	case reporter.OutcomeSubmitted:
		fmt.Fprintf(out, "Report %s sent to OPEN-CUTS. Thank you!\n", res.ReportID)
	case reporter.OutcomeFallbackTriggered:
		fmt.Fprintln(out, "OPEN-CUTS could not be reached. Please finish the report on GitHub.")
	case reporter.OutcomeBothFailed:
		fmt.Fprintln(out, "The report could not be sent.")
	default:
		fmt.Fprintln(out, "No report sent.")
	}
}
