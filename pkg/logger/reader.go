package logger

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FileStore exposes the primary log file to the report pipeline.
type FileStore struct {
	Path string
}

// NewFileStore reads the file the logger is currently writing to.
func NewFileStore() *FileStore {
	return &FileStore{Path: Path()}
}

// Get returns the log content. It never fails: a missing or unreadable
// file yields "".
func (s *FileStore) Get(ctx context.Context) string {
	if s == nil || s.Path == "" {
		return ""
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			otelzap.Ctx(ctx).Warn("Failed to read log file", zap.String("path", s.Path), zap.Error(err))
		}
		return ""
	}
	return string(data)
}
