package remote

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/capabilities"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/models"
)

const redacted = "xxxxx"

type RemoteFunc func(caps selenium.Capabilities, urlPrefix string) (selenium.WebDriver, error)

type RemoteSessionManager struct {
	hub       *url.URL
	w3c       bool
	newRemote RemoteFunc
	l         *zap.SugaredLogger
}

// NewRemoteSessionManager newRemote defaults to selenium.NewRemote
func NewRemoteSessionManager(cfg config.GridConfig, newRemote RemoteFunc, l *zap.Logger) (*RemoteSessionManager, error) {
	hub, err := url.Parse(cfg.HubURL())
	if err != nil {
		return nil, models.NewConfigurationError(errors.Wrap(err, "invalid hub URL"))
	}
	if newRemote == nil {
		newRemote = selenium.NewRemote
	}
	return &RemoteSessionManager{
		hub:       hub,
		w3c:       cfg.W3C(),
		newRemote: newRemote,
		l:         l.Sugar(),
	}, nil
}

type remoteResult struct {
	wd  selenium.WebDriver
	err error
}

func (m *RemoteSessionManager) Open(
	ctx context.Context,
	desc models.CapabilityDescriptor,
	creds config.Credentials,
) (browser.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, models.NewConfigurationError(errors.Wrapf(err, "invalid platform %s", desc.Title()))
	}

	hub := *m.hub
	hub.User = creds.UserInfo()
	caps := capabilities.Build(desc, m.w3c)

	l := m.l.With(zap.String("hub", m.hub.Redacted()), zap.String("platform", desc.Title()))
	l.Infow("creating session")

	// selenium.NewRemote is not cancellable, a session created after ctx is done gets quit
	ch := make(chan remoteResult, 1)
	go func() {
		wd, err := m.newRemote(caps, hub.String())
		ch <- remoteResult{wd: wd, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.err == nil {
				_ = r.wd.Quit()
			}
		}()
		return nil, models.NewSessionCreationError(errors.Wrap(ctx.Err(), "session creation aborted"))
	case r := <-ch:
		if r.err != nil {
			err := scrub(r.err, creds.AccessKey)
			l.Warnw("failed to create session", zap.Error(err))
			return nil, models.NewSessionCreationError(errors.Wrapf(err, "failed to create session on %s", m.hub.Redacted()))
		}
		s := NewRemoteSession(r.wd, desc, m.l.Desugar())
		l.Infow("session created", zap.String("session_id", s.ID()))
		return s, nil
	}
}

// scrub hides the access key should the grid client echo the hub URL back
func scrub(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), secret, redacted))
}
