//go:build !windows

package issues

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpener installs a URL handler that records its argument and makes it
// the only thing on PATH, so no Chromium build can be found.
func fakeOpener(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	record := filepath.Join(dir, "opened")
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	script := "#!/bin/sh\nprintf '%s' \"$1\" > " + record + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0755))
	t.Setenv("PATH", dir)
	return record
}

func TestSystemOpenerWithoutChrome(t *testing.T) {
	record := fakeOpener(t)
	var out bytes.Buffer
	tr := New("https://example.test/new", &out)

	require.NoError(t, tr.Open(context.Background(), "firefox only", "body"))

	want := NewIssueURL("https://example.test/new", "firefox only", "body")
	assert.Contains(t, out.String(), want)
	assert.Eventually(t, func() bool {
		got, err := os.ReadFile(record)
		return err == nil && string(got) == want
	}, 5*time.Second, 20*time.Millisecond)
}
