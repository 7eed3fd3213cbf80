package cmd_helpers_test

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubports/installer-reporter/pkg/cmd_helpers"
	"github.com/ubports/installer-reporter/pkg/config"
	"github.com/ubports/installer-reporter/pkg/uir_err"
)

func TestStateOptionsFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "report"}
	cmd_helpers.AddStateFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"--device", "bacon",
		"--os-index", "2",
		"--prior-error", "adb: no devices, retrying",
		"--prior-error", "second",
	}))

	o := cmd_helpers.StateOptionsFromFlags(cmd)
	assert.Equal(t, "bacon", o.Device)
	assert.Equal(t, 2, o.OSIndex)
	assert.Empty(t, o.OSName)
	assert.Empty(t, o.ConfigFile)
	assert.Equal(t, []string{"adb: no devices, retrying", "second"}, o.PriorErrors)
}

func TestConfigFrom(t *testing.T) {
	_, err := cmd_helpers.ConfigFrom(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, uir_err.GetExitCode(err))

	cfg := &config.Config{LogLevel: "debug"}
	got, err := cmd_helpers.ConfigFrom(cmd_helpers.WithConfig(context.Background(), cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}
