// pkg/testutil/golden.go

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bradleyjkemp/cupaloy/v2"
)

// GoldenFile compares output against snapshots in testdata/golden.
//
// To update golden files when expected output changes:
//
//	UPDATE_GOLDEN=1 go test ./...
type GoldenFile struct {
	t           *testing.T
	snapshotter *cupaloy.Config
}

// NewGolden creates a golden file tester rooted at testdata/golden.
func NewGolden(t *testing.T) *GoldenFile {
	t.Helper()

	goldenDir := filepath.Join("testdata", "golden")
	snapshotter := cupaloy.New(
		cupaloy.SnapshotSubdirectory(goldenDir),
		cupaloy.ShouldUpdate(func() bool {
			_, ok := os.LookupEnv("UPDATE_GOLDEN")
			return ok
		}),
	)
	return &GoldenFile{t: t, snapshotter: snapshotter}
}

// AssertWithName compares got with testdata/golden/<name>. Strings are
// stored verbatim followed by a newline.
func (g *GoldenFile) AssertWithName(name string, got interface{}) {
	g.t.Helper()

	if err := g.snapshotter.SnapshotWithName(name, got); err != nil {
		g.t.Fatalf("Golden file assertion failed for '%s': %v\n\nTo update golden files, run:\n  UPDATE_GOLDEN=1 go test ./...", name, err)
	}
}

// GoldenString is a convenience function for string comparisons.
func GoldenString(t *testing.T, name, got string) {
	t.Helper()
	NewGolden(t).AssertWithName(name, got)
}
