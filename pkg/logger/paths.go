/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/xdg"
)

// PlatformLogPaths returns candidate log paths in order of priority.
// The installer and the reporter share the same log file.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.AppID, shared.PrimaryLogName),
			filepath.Join(".", shared.PrimaryLogName),
		}
	default:
		return []string{
			xdg.StatePath(shared.PrimaryLogName),
			filepath.Join(os.TempDir(), shared.AppID, shared.PrimaryLogName),
		}
	}
}
