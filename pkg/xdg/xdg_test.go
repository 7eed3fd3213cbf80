// pkg/xdg/xdg_test.go

package xdg

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("UIR_TEST_XDG", "set")
	assert.Equal(t, "set", GetEnvOrDefault("UIR_TEST_XDG", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("UIR_TEST_XDG_UNSET", "fallback"))
}

func TestPathsHonourXDGOnLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG variables only apply on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	assert.Equal(t, filepath.Join(dir, "config", "ubports-installer", "settings.yaml"), ConfigPath("settings.yaml"))
	assert.Equal(t, filepath.Join(dir, "state", "ubports-installer", "ubports-installer.log"), StatePath("ubports-installer.log"))
}
