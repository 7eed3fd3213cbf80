// pkg/uir_cli/wrap.go

package uir_cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"go.uber.org/zap"
)

// Wrap gives a command a RuntimeContext that is cancelled on Ctrl-C,
// recovers panics and logs the outcome when the command returns.
func Wrap(fn func(rc *uir_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		rc := uir_io.NewContext(sigCtx, cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		if serr := sanitizeArgs(args); serr != nil {
			rc.Log.Error("Input sanitization failed", zap.Error(serr), zap.String("command", cmd.Name()))
			return uir_err.NewExpectedError(cerr.Wrap(serr, "invalid input"))
		}

		rc.Log.Debug("Running command",
			zap.String("path", cmd.CommandPath()),
			zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && sigCtx.Err() != nil && parent.Err() == nil {
			return uir_err.NewInterruptedError(err)
		}
		if err != nil && !uir_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}

// sanitizeArgs rejects arguments the terminal could not have produced.
func sanitizeArgs(args []string) error {
	for i, arg := range args {
		if strings.ContainsRune(arg, 0) {
			return cerr.Newf("argument %d contains a null byte", i+1)
		}
		for _, r := range arg {
			if r < 0x20 && r != '\t' && r != '\n' {
				return cerr.Newf("argument %d contains control character %U", i+1, r)
			}
		}
	}
	return nil
}
