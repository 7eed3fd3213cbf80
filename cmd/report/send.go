// cmd/report/send.go

package report

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cli"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/reporter"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_io"
)

// SendCmd submits a report without asking anything.
var SendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a report non-interactively",
	Long: `Submit a report built from flags. Without --session the OPEN-CUTS
submission falls back to a GitHub issue on failure. With --session the run is
tagged with the session identifier and a failure is returned as an error.

Examples:
  uir report send --result FAIL --title "bacon: boot flash fails" --error "fastboot: remote failure"
  uir report send --result PASS --title "Works" --session 7f3c --device bacon`,
	Args: cobra.NoArgs,
	RunE: uir_cli.Wrap(runSend),
}

func init() {
	cli.AddStringFlag(SendCmd, "result", "r", "", "Result: PASS, WONKY or FAIL", true)
	cli.AddStringFlag(SendCmd, "title", "t", "", "Report title", true)
	cli.AddStringFlag(SendCmd, "comment", "c", "", "Free-form comment", false)
	cli.AddStringFlag(SendCmd, "error", "e", "", "Error that ended the installation", false)
	cli.AddStringFlag(SendCmd, "session", "s", "", "Installer session identifier used as the run tag", false)
	cmd_helpers.AddStateFlags(SendCmd)
}

func runSend(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	result, err := reporter.ParseResult(cli.GetStringOrEmpty(cmd, "result"))
	if err != nil {
		return err
	}
	title, err := cli.GetRequiredString(cmd, "title")
	if err != nil {
		return err
	}

	c, err := newContainer(rc, cmd)
	if err != nil {
		return err
	}
	st := c.State(rc.Ctx, cmd_helpers.StateOptionsFromFlags(cmd))
	fields := reporter.BugFields{
		Result:  result,
		Title:   title,
		Comment: cli.GetStringOrEmpty(cmd, "comment"),
		Error:   cli.GetStringOrEmpty(cmd, "error"),
	}

	if session := cli.GetStringOrEmpty(cmd, "session"); session != "" {
		if err := c.Reporter.SendOpenCutsRun(rc, st, session, fields); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Run for session %s sent to OPEN-CUTS.\n", session)
		return nil
	}

	res := c.Reporter.SendBugReport(rc, st, fields)
	printOutcome(cmd.OutOrStdout(), res)
	return res.Err()
}
