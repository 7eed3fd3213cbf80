package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"TRACE": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestInitializeWritesToPreferredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ubports-installer.log")
	InitializeWithFallback(path)

	assert.Equal(t, path, Path())
	L().Info("flashing boot partition")
	_ = Sync()

	content := NewFileStore().Get(context.Background())
	assert.Contains(t, content, "flashing boot partition")
}

func TestFindWritableLogPathSkipsUnwritable(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	// A path below a regular file can never be created.
	path, err := FindWritableLogPath(filepath.Join(blocker, "sub", "x.log"))
	require.NoError(t, err)
	assert.NotEqual(t, filepath.Join(blocker, "sub", "x.log"), path)
}

func TestFileStoreGet(t *testing.T) {
	ctx := context.Background()

	var nilStore *FileStore
	assert.Equal(t, "", nilStore.Get(ctx))
	assert.Equal(t, "", (&FileStore{}).Get(ctx))
	assert.Equal(t, "", (&FileStore{Path: filepath.Join(t.TempDir(), "missing.log")}).Get(ctx))

	path := filepath.Join(t.TempDir(), "ubports-installer.log")
	require.NoError(t, os.WriteFile(path, []byte("log content"), 0600))
	assert.Equal(t, "log content", (&FileStore{Path: path}).Get(ctx))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("warn")
	assert.False(t, consoleLevel.Enabled(zapcore.InfoLevel))
	assert.True(t, consoleLevel.Enabled(zapcore.WarnLevel))

	SetLevel("debug")
	assert.True(t, consoleLevel.Enabled(zapcore.DebugLevel))
}
