package cmd_helpers

import (
	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/cli"
)

// AddStateFlags adds the flags that describe the installation being
// reported on.
func AddStateFlags(cmd *cobra.Command) {
	cli.AddStringFlag(cmd, "device", "d", "", "Device codename detected by the installer", false)
	cli.AddStringFlag(cmd, "os", "", "", "Name of the operating system that was installed", false)
	cli.AddIntFlag(cmd, "os-index", "", 0, "Index of the operating system in the device config")
	cli.AddStringFlag(cmd, "file", "f", "", "Local installer config file used instead of the published one", false)
	cli.AddStringArrayFlag(cmd, "prior-error", "", nil, "Error recorded earlier in the run (repeatable)")
}

// StateOptionsFromFlags reads the flags added by AddStateFlags.
func StateOptionsFromFlags(cmd *cobra.Command) StateOptions {
	osIndex, _ := cmd.Flags().GetInt("os-index")
	prior, _ := cmd.Flags().GetStringArray("prior-error")
	return StateOptions{
		Device:      cli.GetStringOrEmpty(cmd, "device"),
		OSName:      cli.GetStringOrEmpty(cmd, "os"),
		OSIndex:     osIndex,
		ConfigFile:  cli.GetStringOrEmpty(cmd, "file"),
		PriorErrors: prior,
	}
}
