package sysinfo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const focalRelease = `NAME="Ubuntu"
VERSION="20.04.1 LTS (Focal Fossa)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 20.04.1 LTS"
VERSION_ID="20.04"
VERSION_CODENAME=focal
UBUNTU_CODENAME=focal
`

func writeRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadOSRelease(t *testing.T) {
	rel, err := ReadOSRelease([]string{"/nonexistent/os-release", writeRelease(t, focalRelease)})
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu", rel.Name)
	assert.Equal(t, "20.04.1 LTS (Focal Fossa)", rel.Version)
	assert.Equal(t, "focal", rel.VersionCodename)
	assert.Equal(t, "ubuntu", rel.ID)
}

func TestReadOSReleaseCodenameFallback(t *testing.T) {
	rel, err := ReadOSRelease([]string{writeRelease(t, "NAME=\"Ubuntu\"\nUBUNTU_CODENAME=jammy\n")})
	require.NoError(t, err)
	assert.Equal(t, "jammy", rel.VersionCodename)
}

func TestReadOSReleaseMissing(t *testing.T) {
	_, err := ReadOSRelease([]string{"/nonexistent/a", "/nonexistent/b"})
	assert.Error(t, err)

	_, err = ReadOSRelease(nil)
	assert.Error(t, err)
}

func TestDetectorLinux(t *testing.T) {
	d := &Detector{
		hostInfo: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{
				OS:              "linux",
				Platform:        "ubuntu",
				PlatformVersion: "20.04",
				KernelVersion:   "5.4.0-42-generic",
				KernelArch:      "x86_64",
			}, nil
		},
		osReleasePaths: []string{writeRelease(t, focalRelease)},
	}

	info, err := d.OSInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &OSInfo{
		Distro:   "Ubuntu",
		Release:  "20.04.1 LTS (Focal Fossa)",
		Codename: "focal",
		Platform: "linux",
		Kernel:   "5.4.0-42-generic",
		Arch:     "x86_64",
	}, info)
}

func TestDetectorWithoutOSRelease(t *testing.T) {
	d := &Detector{
		hostInfo: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{OS: "linux", Platform: "arch", KernelVersion: "6.1", KernelArch: "aarch64"}, nil
		},
		osReleasePaths: []string{"/nonexistent"},
	}
	info, err := d.OSInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "arch", info.Distro)
	assert.Empty(t, info.Codename)
}

func TestDetectorWindowsBuild(t *testing.T) {
	d := &Detector{
		hostInfo: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{OS: "windows", Platform: "Microsoft Windows 10 Pro", PlatformVersion: "10.0.19045 Build 19045"}, nil
		},
	}
	info, err := d.OSInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10.0.19045 Build 19045", info.Build)
}

func TestDetectorHostFailure(t *testing.T) {
	d := &Detector{
		hostInfo: func(context.Context) (*host.InfoStat, error) {
			return nil, errors.New("permission denied")
		},
	}
	_, err := d.OSInfo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
