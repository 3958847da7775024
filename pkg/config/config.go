package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ConfigPrefix = "JOURNEY"

const (
	DefaultHubURL  = "https://hub-cloud.browserstack.com/wd/hub"
	DefaultSiteURL = "https://www.bstackdemo.com"

	hubURL              = "hub-url"
	gridProxy           = "grid-proxy"
	httpTimeout         = "http-timeout"
	w3c                 = "w3c"
	capabilitiesURI     = "capabilities"
	sessionNameTemplate = "session-name-template"
	project             = "project"
	build               = "build"

	siteURL  = "site-url"
	username = "username"
	password = "password"
	vendor   = "vendor"
	product  = "product"

	pollInterval = "poll-interval"
	settleDelay  = "settle-delay"

	quotaLimit   = "parallel"
	queueSize    = "queue-size"
	queueTimeout = "queue-timeout"

	noColor = "no-color"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	genLineage = uuid.NewString
)

type (
	GridConfig interface {
		HubURL() string
		GridProxy() string
		HTTPTimeout() time.Duration
		W3C() bool
	}

	CatalogConfig interface {
		CapabilitiesURI() string
		SessionNameTemplate() string
		Project() string
		Build() string
	}

	JourneyConfig interface {
		SiteURL() string
		Username() string
		Password() string
		Vendor() string
		Product() string
	}

	WaitConfig interface {
		PollInterval() time.Duration
		SettleDelay() time.Duration
	}

	QuotaConfig interface {
		QuotaLimit() int
		QueueSize() int
		QueueTimeout() time.Duration
	}

	Config interface {
		GridConfig
		CatalogConfig
		JourneyConfig
		WaitConfig
		QuotaConfig
		Lineage() string
		NoColor() bool
	}

	ConfigViper struct {
		v       *viper.Viper
		lineage string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	bindEnvVars(v)

	if u := v.GetString(hubURL); u != "" {
		if err := validateURL(u); err != nil {
			return nil, errors.Wrapf(err, "invalid %s parameter", hubURL)
		}
	}
	if u := v.GetString(siteURL); u != "" {
		if err := validateURL(u); err != nil {
			return nil, errors.Wrapf(err, "invalid %s parameter", siteURL)
		}
	}
	if v.GetInt(quotaLimit) < 0 {
		return nil, errors.Errorf("invalid %s parameter (%d), must not be negative", quotaLimit, v.GetInt(quotaLimit))
	}

	return &ConfigViper{
		v:       v,
		lineage: genLineage(),
	}, nil
}

func (c *ConfigViper) HubURL() string {
	return c.v.GetString(hubURL)
}

func (c *ConfigViper) GridProxy() string {
	return c.v.GetString(gridProxy)
}

func (c *ConfigViper) HTTPTimeout() time.Duration {
	return c.v.GetDuration(httpTimeout)
}

func (c *ConfigViper) W3C() bool {
	return c.v.GetBool(w3c)
}

func (c *ConfigViper) CapabilitiesURI() string {
	return c.v.GetString(capabilitiesURI)
}

func (c *ConfigViper) SessionNameTemplate() string {
	return c.v.GetString(sessionNameTemplate)
}

func (c *ConfigViper) Project() string {
	return c.v.GetString(project)
}

func (c *ConfigViper) Build() string {
	return c.v.GetString(build)
}

func (c *ConfigViper) SiteURL() string {
	return c.v.GetString(siteURL)
}

func (c *ConfigViper) Username() string {
	return c.v.GetString(username)
}

func (c *ConfigViper) Password() string {
	return c.v.GetString(password)
}

func (c *ConfigViper) Vendor() string {
	return c.v.GetString(vendor)
}

func (c *ConfigViper) Product() string {
	return c.v.GetString(product)
}

func (c *ConfigViper) PollInterval() time.Duration {
	return c.v.GetDuration(pollInterval)
}

func (c *ConfigViper) SettleDelay() time.Duration {
	return c.v.GetDuration(settleDelay)
}

func (c *ConfigViper) QuotaLimit() int {
	return c.v.GetInt(quotaLimit)
}

func (c *ConfigViper) QueueSize() int {
	return c.v.GetInt(queueSize)
}

func (c *ConfigViper) QueueTimeout() time.Duration {
	return c.v.GetDuration(queueTimeout)
}

func (c *ConfigViper) NoColor() bool {
	return c.v.GetBool(noColor)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func bindEnvVars(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.Errorf("absolute URL expected: %s", s)
	}
	return nil
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
