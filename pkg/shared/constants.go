// pkg/shared/constants.go

package shared

const (
	// AppID names the installer whose runs are reported. It is used for
	// config/state directories and the primary log file name.
	AppID   = "ubports-installer"
	BinName = "uir"

	// EnvPrefix is the viper environment prefix, e.g. UIR_OPENCUTS_URL.
	EnvPrefix = "UIR"

	PrimaryLogName = AppID + ".log"
)

// Version is set at build time with -ldflags "-X .../pkg/shared.Version=x.y.z".
var Version = "0.8.9"

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	FilePermOwnerRWX       = 0700
	FilePermStandard       = 0644
	FilePermOwnerReadWrite = 0600
)
