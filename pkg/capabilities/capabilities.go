package capabilities

import (
	"strconv"

	"github.com/tebeka/selenium"

	"github.com/selebrow/journey/pkg/models"
)

const bstackOptions = "bstack:options"

// Build converts a descriptor into capabilities sent with the new session request.
// W3C mode nests vendor keys under bstack:options, legacy mode uses the flat
// JSON Wire keys. Credentials are never part of the result, they travel in the hub URL.
func Build(d models.CapabilityDescriptor, w3c bool) selenium.Capabilities {
	if w3c {
		return buildW3C(d)
	}
	return buildLegacy(d)
}

func buildW3C(d models.CapabilityDescriptor) selenium.Capabilities {
	opts := make(map[string]interface{})
	setString(opts, "os", d.OS)
	setString(opts, "osVersion", d.OSVersion)
	setString(opts, "deviceName", d.Device)
	setString(opts, "projectName", d.Project)
	setString(opts, "buildName", d.Build)
	setString(opts, "sessionName", d.Name)
	setBool(opts, "realMobile", d.RealMobile)
	setBool(opts, "debug", d.Debug)
	setBool(opts, "networkLogs", d.NetworkLogs)

	caps := selenium.Capabilities{
		bstackOptions: opts,
	}
	setString(caps, "browserName", d.BrowserName)
	return caps
}

func buildLegacy(d models.CapabilityDescriptor) selenium.Capabilities {
	caps := selenium.Capabilities{}
	setString(caps, "browserName", d.BrowserName)
	setString(caps, "os", d.OS)
	setString(caps, "os_version", d.OSVersion)
	setString(caps, "device", d.Device)
	setString(caps, "project", d.Project)
	setString(caps, "build", d.Build)
	setString(caps, "name", d.Name)
	setBool(caps, "realMobile", d.RealMobile)
	setBool(caps, "browserstack.debug", d.Debug)
	setBool(caps, "browserstack.networkLogs", d.NetworkLogs)
	return caps
}

func setString(m map[string]interface{}, key, val string) {
	if val != "" {
		m[key] = val
	}
}

// the grid expects string booleans
func setBool(m map[string]interface{}, key string, val bool) {
	if val {
		m[key] = strconv.FormatBool(val)
	}
}
