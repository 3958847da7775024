package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// CapabilityDescriptor platform and session labels requested from the grid
type CapabilityDescriptor struct {
	OS          string `yaml:"os,omitempty"`
	OSVersion   string `yaml:"osVersion,omitempty"`
	Device      string `yaml:"device,omitempty"`
	RealMobile  bool   `yaml:"realMobile,omitempty"`
	BrowserName string `yaml:"browserName,omitempty"`

	Debug       bool   `yaml:"debug,omitempty"`
	NetworkLogs bool   `yaml:"networkLogs,omitempty"`
	Project     string `yaml:"project,omitempty"`
	Build       string `yaml:"build,omitempty"`
	Name        string `yaml:"name,omitempty"`
}

func (d CapabilityDescriptor) IsDevice() bool {
	return d.Device != ""
}

// Title human readable label used for logs and reports
func (d CapabilityDescriptor) Title() string {
	return fmt.Sprintf("Bstackdemo Journey on %s - %s",
		firstNonEmpty(d.BrowserName, d.Device, "Unknown"),
		firstNonEmpty(d.OS, "Unknown OS"))
}

func (d CapabilityDescriptor) Validate() error {
	switch {
	case d.OS != "" && d.Device != "":
		return errors.Errorf("both os (%s) and device (%s) are set", d.OS, d.Device)
	case d.OS == "" && d.Device == "":
		return errors.New("either os or device must be set")
	case d.BrowserName == "":
		return errors.New("browserName is required")
	case d.OS != "" && d.OSVersion == "":
		return errors.Errorf("osVersion is required for os %s", d.OS)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
