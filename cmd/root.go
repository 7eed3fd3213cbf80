/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ubports/installer-reporter/cmd/debug"
	"github.com/ubports/installer-reporter/cmd/report"
	"github.com/ubports/installer-reporter/cmd/self"
	"github.com/ubports/installer-reporter/pkg/cli"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/config"
	"github.com/ubports/installer-reporter/pkg/logger"
	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/telemetry"
	"github.com/ubports/installer-reporter/pkg/uir_cli"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"go.uber.org/zap"
)

var (
	configFile string
	envFile    string
)

// RootCmd is the base command for uir.
var RootCmd = &cobra.Command{
	Use:   shared.BinName,
	Short: "Report UBports installer runs to OPEN-CUTS",
	Long: `uir collects a debug bundle for an installer run (device, host environment,
errors) and submits it to OPEN-CUTS. When that fails it opens a pre-filled
GitHub issue instead.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return telemetry.Shutdown(context.Background())
	},
	RunE: uir_cli.Wrap(func(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return cli.ShowHelp(cmd)
	}),
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return RootCmd.Help()
		}
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return fmt.Errorf("command not found: %s", strings.Join(args, " "))
		}
		return c.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/ubports-installer/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file with UIR_* variables (default ./.env if present)")
	RootCmd.PersistentFlags().Bool("debug", false, "Verbose console logging and full error traces (env UIR_DEBUG)")
}

// loadConfig runs before every subcommand and hands the configuration to
// it through the command context. Flags are bound into viper, so a set flag
// beats UIR_* variables and config.yaml.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := cli.BindFlagsToViper(cmd, v, ""); err != nil {
		return uir_err.NewValidationError("bind flags", err)
	}
	cfg, err := config.Load(v, config.LoadOptions{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return err
	}

	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	uir_err.SetDebugMode(cfg.Debug)
	logger.SetLevel(cfg.LogLevel)

	if err := telemetry.Init(shared.BinName, cfg.Telemetry.Enabled, cfg.Telemetry.Dir); err != nil {
		logger.L().Warn("Telemetry disabled", zap.Error(err))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cmd_helpers.WithConfig(ctx, cfg))
	return nil
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)
	for _, sub := range []*cobra.Command{
		report.ReportCmd,
		debug.DebugInfoCmd,
		self.SelfCmd,
		VersionCmd,
	} {
		RootCmd.AddCommand(sub)
	}
}

// Execute runs the root command and exits with the error's exit code.
func Execute() {
	RegisterCommands()

	err := RootCmd.ExecuteContext(context.Background())
	if syncErr := logger.Sync(); syncErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", syncErr)
	}
	if err != nil {
		uir_err.PrintError("uir failed", err)
		os.Exit(uir_err.GetExitCode(err))
	}
}
