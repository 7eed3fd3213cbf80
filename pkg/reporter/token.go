// pkg/reporter/token.go

package reporter

import (
	"errors"

	"github.com/ubports/installer-reporter/pkg/interaction"
	"github.com/ubports/installer-reporter/pkg/settings"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/ubports/installer-reporter/pkg/uir_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var tokenForm = interaction.Form{
	Title: "OPEN-CUTS API token",
	Description: "Set an API token to link your reports to your OPEN-CUTS account. " +
		"Log in at [ubports.open-cuts.org](https://ubports.open-cuts.org), open your " +
		"account settings and copy the token. Leave it empty to skip.",
	Fields: []interaction.Field{
		{Name: "token", Label: "API token", Secret: true},
	},
}

// TokenDialog asks for an OPEN-CUTS token and stores it. It reports whether
// a token was saved; every failure is logged and otherwise ignored.
func (r *Reporter) TokenDialog(rc *uir_io.RuntimeContext) bool {
	logger := otelzap.Ctx(rc.Ctx)
	if r.prompter == nil || r.settings == nil {
		logger.Warn("Token dialog unavailable")
		return false
	}

	answers, err := r.prompter.Prompt(rc.Ctx, tokenForm)
	if errors.Is(err, uir_err.ErrPromptDeclined) {
		logger.Info("Token dialog declined")
		return false
	}
	if err != nil {
		logger.Warn("Token dialog failed", zap.Error(err))
		return false
	}
	token := answers["token"]
	if token == "" {
		logger.Info("No token entered")
		return false
	}

	if err := r.settings.Set(settings.OpenCutsTokenKey, token); err != nil {
		logger.Warn("Failed to save token", zap.Error(err))
		return false
	}
	logger.Info("OPEN-CUTS token saved")
	return true
}
