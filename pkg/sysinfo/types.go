// pkg/sysinfo/types.go

package sysinfo

import "context"

// OSInfo mirrors the fields a bug report needs to identify the host.
// Fields that do not apply to the platform stay empty.
type OSInfo struct {
	Distro      string `json:"distro"`
	Release     string `json:"release"`
	Codename    string `json:"codename"`
	Platform    string `json:"platform"`
	Kernel      string `json:"kernel"`
	Arch        string `json:"arch"`
	Build       string `json:"build"`
	ServicePack string `json:"servicepack"`
}

// Provider returns information about the running operating system.
type Provider interface {
	OSInfo(ctx context.Context) (*OSInfo, error)
}
