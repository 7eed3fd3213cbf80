// pkg/reporter/devicelink.go

package reporter

import (
	"fmt"

	"github.com/ubports/installer-reporter/pkg/installer"
)

const (
	configRepoBase     = "https://github.com/ubports/installer-configs/blob/master/v2/devices/"
	devicePageBase     = "https://devices.ubuntu-touch.io/device/"
	devicePageOS       = "Ubuntu Touch"
	notDeviceDependent = "(not device dependent)"
	localConfigSuffix  = " with local config file"
)

// DeviceLinkMarkdown renders a device reference for a report. With config
// metadata the link uses the config's codename, not the argument.
func DeviceLinkMarkdown(props installer.Props, cli installer.CLI, codename string) string {
	switch {
	case codename == "":
		return notDeviceDependent
	case cli.File != "":
		return "`" + codename + "`" + localConfigSuffix
	case props.Config == nil:
		return "`" + codename + "`"
	}

	cfg := props.Config
	name := cfg.Name
	if props.OS != nil && props.OS.Name == devicePageOS {
		name = fmt.Sprintf("[%s](%s%s/)", cfg.Name, devicePageBase, cfg.Codename)
	}
	return fmt.Sprintf("[`%s`](%s%s.yml) (%s)", cfg.Codename, configRepoBase, cfg.Codename, name)
}
