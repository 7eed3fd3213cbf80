// pkg/logger/writer.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ubports/installer-reporter/pkg/shared"
	"go.uber.org/zap/zapcore"
)

// GetLogFileWriter opens path for appending, creating its directory.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), shared.FilePermOwnerRWX); err != nil {
		return nil, fmt.Errorf("log directory %s: %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns preferred if writable, otherwise the first
// usable platform path.
func FindWritableLogPath(preferred string) (string, error) {
	candidates := PlatformLogPaths()
	if preferred != "" {
		candidates = append([]string{preferred}, candidates...)
	}
	for _, path := range candidates {
		if writable(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}

func writable(path string) bool {
	if err := os.MkdirAll(filepath.Dir(path), shared.FilePermOwnerRWX); err != nil {
		return false
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
