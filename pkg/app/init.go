package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/net/http/httpproxy"
	stdProxy "golang.org/x/net/proxy"

	"github.com/selebrow/journey/internal/browser/limited"
	"github.com/selebrow/journey/internal/browser/remote"
	hc "github.com/selebrow/journey/internal/common/client"
	"github.com/selebrow/journey/internal/interact"
	"github.com/selebrow/journey/internal/scenario"
	"github.com/selebrow/journey/internal/suite"
	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/capabilities"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/event"
	evmodels "github.com/selebrow/journey/pkg/event/models"
	"github.com/selebrow/journey/pkg/log"
	"github.com/selebrow/journey/pkg/models"
	"github.com/selebrow/journey/pkg/quota"
	"github.com/selebrow/journey/pkg/quota/limit"
	"github.com/selebrow/journey/pkg/signal"
)

const (
	defaultEventBufferSize = 100
	defaultPublishTimeout  = time.Second
)

var (
	InitLog *zap.SugaredLogger

	lookupEnv = os.LookupEnv
	stdout    = colorable.NewColorableStdout
)

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitCredentialsFunc(_ config.Config) config.Credentials {
	creds, err := config.LoadCredentials(lookupEnv)
	if err != nil {
		InitLog.Fatalw("failed to load grid credentials", zap.Error(err))
	}
	log.AddSecret(creds.AccessKey)
	return creds
}

func InitDialerFunc(_ config.Config) *net.Dialer {
	return &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
}

func InitTransportFunc(cfg config.Config, dialer *net.Dialer) *http.Transport {
	tr, err := newGridTransport(cfg.GridProxy(), dialer)
	if err != nil {
		InitLog.Fatalw("failed to initialize grid transport", zap.Error(err))
	}
	return tr
}

// newGridTransport routes grid traffic through proxyURL (http, https or socks5),
// standard proxy environment variables apply when it is empty
func newGridTransport(proxyURL string, d *net.Dialer) (*http.Transport, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone() //nolint:errcheck // false positive
	tr.DialContext = d.DialContext

	if proxyURL == "" {
		proxyFunc := httpproxy.FromEnvironment().ProxyFunc()
		tr.Proxy = func(request *http.Request) (*url.URL, error) {
			return proxyFunc(request.URL)
		}
		return tr, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, models.NewConfigurationError(errors.Wrap(err, "failed to parse grid proxy URL"))
	}
	switch u.Scheme {
	case "http", "https":
		tr.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		pd, err := stdProxy.FromURL(u, d)
		if err != nil {
			return nil, models.NewConfigurationError(errors.Wrap(err, "failed to initialize socks proxy dialer"))
		}
		cd, ok := pd.(stdProxy.ContextDialer)
		if !ok {
			return nil, models.NewConfigurationError(errors.Errorf("proxy dialer for %s does not support contexts", u.Scheme))
		}
		tr.Proxy = nil
		tr.DialContext = cd.DialContext
	default:
		return nil, models.NewConfigurationError(errors.Errorf("unsupported grid proxy scheme: %s", u.Scheme))
	}
	return tr, nil
}

func InitHTTPClientFunc(cfg config.Config, transport http.RoundTripper) *http.Client {
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.HTTPTimeout(),
	}
}

func InitSignalHandlerFunc(_ config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(5*time.Second, l)
}

func loadCapabilities(cfg config.Config, httpClient hc.HTTPClient) []byte {
	uri := cfg.CapabilitiesURI()
	if uri == "" {
		InitLog.Info("using built-in platform list")
		return capabilities.DefaultCatalog
	}

	var (
		data []byte
		err  error
	)
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)
	if httpPattern.MatchString(uri) {
		data, err = downloadCapabilities(httpClient, uri)
	} else {
		data, err = os.ReadFile(uri)
	}
	if err != nil {
		InitLog.Fatalw("failed to load capabilities", zap.Error(err), zap.String("uri", uri))
	}
	return data
}

func downloadCapabilities(httpClient hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading capabilities from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitCatalogFunc(cfg config.Config, data []byte) capabilities.Catalog {
	overrides := models.CapabilityDescriptor{
		Project: cfg.Project(),
		Build:   cfg.Build(),
	}
	cat, err := capabilities.NewYamlCatalog(data, overrides, cfg.SessionNameTemplate(),
		capabilities.WithLineage(cfg.Lineage()))
	if err != nil {
		InitLog.Fatalw("failed to initialize capabilities catalog", zap.Error(err))
	}

	for _, d := range cat.Descriptors() {
		InitLog.Infow("platform configured", zap.String("platform", d.Title()), zap.String("name", d.Name))
	}
	return cat
}

func InitEventBrokerFunc(_ config.Config, sig *signal.Handler) event.EventBroker {
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, l, event.WithPublishTimeout(defaultPublishTimeout))
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func InitReporterFunc(cfg config.Config, eb event.EventBroker) *suite.Reporter {
	rep := suite.NewReporter(stdout(), cfg.NoColor())
	rep.Start(eb.Subscribe(
		evmodels.ScenarioStartedEventType,
		evmodels.SessionOpenedEventType,
		evmodels.ScenarioFinishedEventType,
	))
	return rep
}

func InitSessionManagerFunc(cfg config.Config) browser.SessionManager {
	l := log.GetLogger().Named("session")
	mgr, err := remote.NewRemoteSessionManager(cfg, nil, l)
	if err != nil {
		InitLog.Fatalw("failed to initialize session manager", zap.Error(err))
	}
	return mgr
}

// InitQuotaAuthorizerFunc limit 0 grants one grid session per platform
func InitQuotaAuthorizerFunc(cfg config.Config, platforms int) quota.QuotaAuthorizer {
	lim := cfg.QuotaLimit()
	if lim == 0 {
		lim = max(platforms, 1)
	}
	l := log.GetLogger().Named("quota")
	return limit.NewLimitQuotaAuthorizer(lim, cfg.QueueSize(), l)
}

func InitLimitedSessionManagerFunc(cfg config.Config, mgr browser.SessionManager, qa quota.QuotaAuthorizer) browser.SessionManager {
	l := log.GetLogger().Named("limit")
	return limited.NewLimitedSessionManager(mgr, qa, cfg.QueueTimeout(), l)
}

func InitRunnerFunc(cfg config.Config, mgr browser.SessionManager, eb event.EventBroker) scenario.Runner {
	l := log.GetLogger().Named("scenario")
	t := interact.DefaultTimeouts()
	t.Settle = cfg.SettleDelay()
	return scenario.NewJourneyRunner(mgr, scenario.NewJourney(cfg), eb, l,
		scenario.WithTimeouts(t, scenario.DefaultStepTimeouts()),
		scenario.WithPollInterval(cfg.PollInterval()),
	)
}
