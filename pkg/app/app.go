package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/internal/scenario"
	"github.com/selebrow/journey/internal/suite"
	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/capabilities"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/event"
	"github.com/selebrow/journey/pkg/quota"
	"github.com/selebrow/journey/pkg/signal"
)

var (
	InitLogger          func() *zap.Logger                                     = InitLoggerFunc
	InitConfig          func() config.Config                                   = InitConfigFunc
	InitCredentials     func(config.Config) config.Credentials                 = InitCredentialsFunc
	InitDialer          func(config.Config) *net.Dialer                        = InitDialerFunc
	InitTransport       func(config.Config, *net.Dialer) *http.Transport       = InitTransportFunc
	InitHTTPClient      func(config.Config, http.RoundTripper) *http.Client    = InitHTTPClientFunc
	InitCatalog         func(config.Config, []byte) capabilities.Catalog       = InitCatalogFunc
	InitSignalHandler   func(config.Config) *signal.Handler                    = InitSignalHandlerFunc
	InitEventBroker     func(config.Config, *signal.Handler) event.EventBroker = InitEventBrokerFunc
	InitReporter        func(config.Config, event.EventBroker) *suite.Reporter = InitReporterFunc
	InitSessionManager  func(config.Config) browser.SessionManager             = InitSessionManagerFunc
	InitQuotaAuthorizer func(config.Config, int) quota.QuotaAuthorizer         = InitQuotaAuthorizerFunc
	InitLimitedSessionManager func(
		config.Config,
		browser.SessionManager,
		quota.QuotaAuthorizer,
	) browser.SessionManager = InitLimitedSessionManagerFunc
	InitRunner func(
		config.Config,
		browser.SessionManager,
		event.EventBroker,
	) scenario.Runner = InitRunnerFunc

	osExit = os.Exit
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	// fail fast, before anything talks to the grid
	creds := InitCredentials(cfg)
	mainLog.Infow("grid credentials loaded", zap.Stringer("credentials", creds), zap.String("lineage", cfg.Lineage()))

	sig := InitSignalHandler(cfg)

	dialer := InitDialer(cfg)
	transport := InitTransport(cfg, dialer)
	selenium.HTTPClient = InitHTTPClient(cfg, transport)

	capsData := loadCapabilities(cfg, http.DefaultClient) // using Default client with sane timeout defaults
	catalog := InitCatalog(cfg, capsData)
	descs := catalog.Descriptors()

	eb := InitEventBroker(cfg, sig)
	rep := InitReporter(cfg, eb)

	qa := InitQuotaAuthorizer(cfg, len(descs))
	mgr := InitSessionManager(cfg)
	mgr = InitLimitedSessionManager(cfg, mgr, qa)
	runner := InitRunner(cfg, mgr, eb)

	// everything above the quota waits in its queue, anything beyond would be rejected
	s := suite.NewSuite(runner, descs, creds, qa.Limit()+cfg.QueueSize(), l.Named("suite"))

	ctx := sig.Watch(context.Background())
	results := s.Run(ctx)

	code := sig.Shutdown()
	rep.Wait()
	rep.Summary(results)

	if !suite.AllPassed(results) {
		code = 1
	}
	osExit(code)
}
