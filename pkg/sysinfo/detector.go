// Package sysinfo answers "what operating system is this report coming from".
package sysinfo

import (
	"context"
	"runtime"

	cerr "github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Detector implements Provider with gopsutil and os-release.
type Detector struct {
	hostInfo       func(ctx context.Context) (*host.InfoStat, error)
	osReleasePaths []string
}

// NewDetector creates a detector reading the live system.
func NewDetector() *Detector {
	return &Detector{
		hostInfo:       host.InfoWithContext,
		osReleasePaths: DefaultOSReleasePaths,
	}
}

// OSInfo queries the host. It fails only when the host query fails; a
// missing os-release just leaves distro details to gopsutil.
func (d *Detector) OSInfo(ctx context.Context) (*OSInfo, error) {
	logger := otelzap.Ctx(ctx)

	hi, err := d.hostInfo(ctx)
	if err != nil {
		return nil, cerr.Wrap(err, "query host information")
	}

	info := &OSInfo{
		Distro:   hi.Platform,
		Release:  hi.PlatformVersion,
		Platform: hi.OS,
		Kernel:   hi.KernelVersion,
		Arch:     hi.KernelArch,
	}
	if info.Platform == "" {
		info.Platform = runtime.GOOS
	}

	switch info.Platform {
	case "linux":
		rel, err := ReadOSRelease(d.osReleasePaths)
		if err != nil {
			logger.Debug("os-release unavailable", zap.Error(err))
			break
		}
		if rel.Name != "" {
			info.Distro = rel.Name
		}
		if rel.Version != "" {
			info.Release = rel.Version
		}
		info.Codename = rel.VersionCodename
	case "windows", "darwin":
		info.Build = hi.PlatformVersion
	}

	logger.Debug("OS information resolved",
		zap.String("distro", info.Distro),
		zap.String("release", info.Release),
		zap.String("kernel", info.Kernel),
		zap.String("arch", info.Arch))

	return info, nil
}
