// pkg/reporter/environment.go

package reporter

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// runtimeName and runtimeVersion close the environment string.
var (
	runtimeName    = "Go"
	runtimeVersion = runtime.Version
	fallbackOS     = runtime.GOOS
)

// environment describes the host as "distro release codename platform kernel
// arch build servicepack Go <version>". It falls back to the bare platform
// name when the OS query fails and never returns an error.
func (r *Reporter) environment(ctx context.Context) string {
	logger := otelzap.Ctx(ctx)
	if r.osInfo == nil {
		return fallbackOS
	}
	info, err := r.osInfo.OSInfo(ctx)
	if err != nil || info == nil {
		logger.Warn("OS information unavailable, using platform only", zap.Error(err))
		return fallbackOS
	}
	return strings.Join([]string{
		info.Distro,
		info.Release,
		info.Codename,
		info.Platform,
		info.Kernel,
		info.Arch,
		info.Build,
		info.ServicePack,
		runtimeName,
		runtimeVersion(),
	}, " ")
}

// PackagingEnvironment names how the installer was shipped: snap and
// AppImage set their own variables, anything else reports pkg.
func PackagingEnvironment(pkg string) string {
	switch {
	case os.Getenv("SNAP") != "":
		return "snap"
	case os.Getenv("APPIMAGE") != "":
		return "appimage"
	default:
		return pkg
	}
}
