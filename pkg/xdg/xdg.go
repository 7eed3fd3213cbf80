// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ubports/installer-reporter/pkg/shared"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// ConfigPath returns <config home>/ubports-installer/<file>.
// On Windows and macOS it defers to os.UserConfigDir.
func ConfigPath(file string) string {
	return filepath.Join(configHome(), shared.AppID, file)
}

// StatePath returns <state home>/ubports-installer/<file>. Logs live here.
func StatePath(file string) string {
	if runtime.GOOS != "linux" {
		return filepath.Join(configHome(), shared.AppID, "state", file)
	}
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(home(), ".local", "state"))
	return filepath.Join(base, shared.AppID, file)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), shared.FilePermOwnerRWX)
}

func configHome() string {
	if runtime.GOOS == "linux" {
		return GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(home(), ".config"))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(home(), ".config")
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
