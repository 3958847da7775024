package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")

	f.String(hubURL, DefaultHubURL, "Remote WebDriver hub URL, credentials are taken from "+
		UsernameEnv+" and "+AccessKeyEnv)
	f.String(gridProxy, "", "Proxy URL used to reach the hub, e.g. socks5://127.0.0.1:1080 (direct connection if empty)")
	f.Duration(httpTimeout, 3*time.Minute, "Timeout for a single WebDriver HTTP request")
	f.Bool(w3c, true, "Send W3C capabilities (bstack:options), set to false for legacy JSON Wire keys")
	f.String(capabilitiesURI, "", "Path to capabilities YAML file, built-in platform list is used if empty")
	f.String(sessionNameTemplate, "", "Go template for session names (sprig functions available)")
	f.String(project, "", "Project label, overrides the capabilities file")
	f.String(build, "", "Build label, overrides the capabilities file")

	f.String(siteURL, DefaultSiteURL, "Demo shop base URL")
	f.String(username, "demouser", "Demo shop user to log in with")
	f.String(password, "testingisfun99", "Demo shop password")
	f.String(vendor, "Samsung", "Vendor filter to apply")
	f.String(product, "Galaxy S20+", "Product to add to favourites")

	f.Duration(pollInterval, 50*time.Millisecond, "Polling interval for DOM conditions")
	f.Duration(settleDelay, 1500*time.Millisecond, "Pause after UI actions with asynchronous handlers")

	f.Int(quotaLimit, 0, "Maximum number of simultaneously open grid sessions, 0 - one per platform")
	f.Int(queueSize, 25, "Queue size for scenarios waiting for a free grid session")
	f.Duration(queueTimeout, 10*time.Minute, "Timeout to wait for a free grid session")

	f.Bool(noColor, false, "Disable colored report output")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
