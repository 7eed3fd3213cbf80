// cmd/self/self.go

package self

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_io"
)

var (
	// SelfCmd groups commands that manage uir itself.
	SelfCmd = &cobra.Command{
		Use:   "self",
		Short: "Manage uir settings",
	}

	// TokenCmd stores an OPEN-CUTS API token in the settings file.
	TokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Set the OPEN-CUTS API token",
		Long: `Ask for an OPEN-CUTS API token and store it in the settings file.
Reports sent afterwards are linked to your OPEN-CUTS account. Leaving the
answer empty keeps the current token.`,
		Args: cobra.NoArgs,
		RunE: uir_cli.Wrap(runToken),
	}
)

func init() {
	SelfCmd.AddCommand(TokenCmd)
}

func runToken(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg, err := cmd_helpers.ConfigFrom(rc.Ctx)
	if err != nil {
		return err
	}
	c, err := cmd_helpers.NewReporterContainer(rc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if c.Reporter.TokenDialog(rc) {
		fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", c.Settings.Path())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "No token saved.")
	return nil
}
