// cmd/debug/debug.go

package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cli"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/reporter"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"golang.org/x/term"
)

// DebugInfoCmd prints the debug bundle a report would carry.
var DebugInfoCmd = &cobra.Command{
	Use:   "debug-info",
	Short: "Print the debug bundle for an installer run",
	Long: `Print the device link, host environment and errors that a report would
include. By default the bundle is rendered as Markdown; --raw prints the
percent-encoded form that is sent.

Examples:
  uir debug-info --device bacon --os "Ubuntu Touch"
  uir debug-info --error "fastboot: remote failure" --raw`,
	Args: cobra.NoArgs,
	RunE: uir_cli.Wrap(runDebugInfo),
}

func init() {
	cli.AddStringFlag(DebugInfoCmd, "error", "e", "", "Error to include in the bundle", false)
	cli.AddStringFlag(DebugInfoCmd, "comment", "c", "", "Comment to include in the bundle", false)
	cli.AddBoolFlag(DebugInfoCmd, "raw", "", false, "Print the percent-encoded bundle")
	cmd_helpers.AddStateFlags(DebugInfoCmd)
}

func runDebugInfo(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg, err := cmd_helpers.ConfigFrom(rc.Ctx)
	if err != nil {
		return err
	}
	c, err := cmd_helpers.NewReporterContainer(rc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	st := c.State(rc.Ctx, cmd_helpers.StateOptionsFromFlags(cmd))

	encoded := c.Reporter.DebugInfo(rc, st, reporter.DebugRequest{
		Error:   cli.GetStringOrEmpty(cmd, "error"),
		Comment: cli.GetStringOrEmpty(cmd, "comment"),
	})

	out := cmd.OutOrStdout()
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprintln(out, encoded)
		return nil
	}
	text, err := reporter.DecodeDebugInfo(encoded)
	if err != nil {
		return err
	}
	fmt.Fprint(out, interaction.RenderMarkdown(text, isTerminal(out)))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
