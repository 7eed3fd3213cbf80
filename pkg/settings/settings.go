// Package settings persists user settings such as the OPEN-CUTS token in a
// small YAML file.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/ubports/installer-reporter/pkg/shared"
	"github.com/ubports/installer-reporter/pkg/xdg"
)

// OpenCutsTokenKey is the settings key holding the OPEN-CUTS API token.
const OpenCutsTokenKey = "opencuts_token"

// Store is a viper-backed key/value file. Every Set rewrites the file.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads path if it exists; a missing file yields an empty store.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, cerr.Wrapf(err, "read settings %s", path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, cerr.Wrapf(err, "stat settings %s", path)
	}
	return &Store{v: v, path: path}, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Set stores value under key and writes the file with owner-only permissions.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	if err := xdg.EnsureDir(s.path); err != nil {
		return cerr.Wrap(err, "create settings directory")
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return cerr.Wrapf(err, "write settings %s", s.path)
	}
	if err := os.Chmod(s.path, shared.FilePermOwnerReadWrite); err != nil {
		return cerr.Wrap(err, "restrict settings permissions")
	}
	return nil
}

// Get returns the value for key or "".
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}
