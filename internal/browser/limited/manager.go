package limited

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/models"
	"github.com/selebrow/journey/pkg/quota"
)

type LimitedSessionManager struct {
	mgr          browser.SessionManager
	qa           quota.QuotaAuthorizer
	queueTimeout time.Duration
	l            *zap.SugaredLogger
}

func NewLimitedSessionManager(
	mgr browser.SessionManager,
	qa quota.QuotaAuthorizer,
	queueTimeout time.Duration,
	l *zap.Logger,
) *LimitedSessionManager {
	return &LimitedSessionManager{
		mgr:          mgr,
		qa:           qa,
		queueTimeout: queueTimeout,
		l:            l.Sugar(),
	}
}

func (m *LimitedSessionManager) Open(
	ctx context.Context,
	desc models.CapabilityDescriptor,
	creds config.Credentials,
) (browser.Session, error) {
	qCtx, cancel := context.WithTimeout(ctx, m.queueTimeout)
	defer cancel()
	if err := m.qa.Reserve(qCtx); err != nil {
		return nil, err
	}
	m.l.Debugw("session slot acquired",
		zap.String("platform", desc.Title()),
		zap.Stringer("quota", m.qa.Stats()),
	)

	s, err := m.mgr.Open(ctx, desc, creds)
	if err != nil {
		m.qa.Release()
		return nil, err
	}

	return NewLimitedSession(s, m.qa.Release), nil
}
