// cmd/version.go

package cmd

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_io"
)

// VersionCmd prints the reporter build and the installer version it
// reports for.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: uir_cli.Wrap(func(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s %s/%s)\n", shared.BinName, shared.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

		cfg, err := cmd_helpers.ConfigFrom(rc.Ctx)
		if err != nil {
			return err
		}
		installerVersion := cfg.Installer.Version
		if v, err := version.NewVersion(installerVersion); err == nil {
			installerVersion = v.String()
		}
		fmt.Fprintf(out, "reports for %s %s (%s)\n", shared.AppID, installerVersion, cfg.Installer.Package)
		return nil
	}),
}
