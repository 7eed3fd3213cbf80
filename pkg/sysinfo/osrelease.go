// pkg/sysinfo/osrelease.go

package sysinfo

import (
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// DefaultOSReleasePaths lists os-release locations in lookup order.
var DefaultOSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// OSRelease holds the os-release keys used in reports.
type OSRelease struct {
	ID              string
	Name            string
	PrettyName      string
	Version         string
	VersionID       string
	VersionCodename string
}

// ReadOSRelease parses the first readable file in paths. The format is a
// shell-compatible KEY=value list, which godotenv understands.
func ReadOSRelease(paths []string) (*OSRelease, error) {
	var lastErr error
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		values, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			return nil, cerr.Wrapf(err, "parse %s", path)
		}
		rel := &OSRelease{
			ID:              values["ID"],
			Name:            values["NAME"],
			PrettyName:      values["PRETTY_NAME"],
			Version:         values["VERSION"],
			VersionID:       values["VERSION_ID"],
			VersionCodename: values["VERSION_CODENAME"],
		}
		if rel.VersionCodename == "" {
			rel.VersionCodename = values["UBUNTU_CODENAME"]
		}
		return rel, nil
	}
	if lastErr == nil {
		lastErr = cerr.New("no os-release paths given")
	}
	return nil, cerr.Wrap(lastErr, "os-release not found")
}
