// pkg/installer/types.go

package installer

// DeviceConfig is the subset of a v2 installer config used in reports.
type DeviceConfig struct {
	Name             string            `yaml:"name"`
	Codename         string            `yaml:"codename"`
	Aliases          []string          `yaml:"aliases,omitempty"`
	OperatingSystems []OperatingSystem `yaml:"operating_systems"`
}

// OperatingSystem is one installable OS entry of a device config.
type OperatingSystem struct {
	Name string `yaml:"name"`
}

// OSInfo describes the OS selected for installation.
type OSInfo struct {
	Name string
}

// Props is a read-only snapshot of the installer's device context.
// Device is the detected codename; Config and OS may be nil.
type Props struct {
	Device string
	Config *DeviceConfig
	OS     *OSInfo
}

// CLI carries command-line state that influences report content.
// File is set when a local config file overrides the published one.
type CLI struct {
	File string
}

// Codename prefers the loaded config's codename over the detected device.
func (p Props) Codename() string {
	if p.Config != nil && p.Config.Codename != "" {
		return p.Config.Codename
	}
	return p.Device
}

// SelectOS picks the operating system at index i of the loaded config.
// It returns nil when no config is loaded or i is out of range.
func (p Props) SelectOS(i int) *OSInfo {
	if p.Config == nil || i < 0 || i >= len(p.Config.OperatingSystems) {
		return nil
	}
	return &OSInfo{Name: p.Config.OperatingSystems[i].Name}
}
