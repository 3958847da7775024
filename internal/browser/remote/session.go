package remote

import (
	"sync"
	"time"

	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/pkg/models"
)

type RemoteSession struct {
	wd      selenium.WebDriver
	id      string
	desc    models.CapabilityDescriptor
	started time.Time
	once    sync.Once
	l       *zap.SugaredLogger
}

func NewRemoteSession(wd selenium.WebDriver, desc models.CapabilityDescriptor, l *zap.Logger) *RemoteSession {
	id := wd.SessionID()
	return &RemoteSession{
		wd:      wd,
		id:      id,
		desc:    desc,
		started: time.Now(),
		l:       l.Sugar().With(zap.String("session_id", id)),
	}
}

func (s *RemoteSession) ID() string {
	return s.id
}

func (s *RemoteSession) Descriptor() models.CapabilityDescriptor {
	return s.desc
}

func (s *RemoteSession) Driver() selenium.WebDriver {
	return s.wd
}

func (s *RemoteSession) Close() {
	s.once.Do(func() {
		if err := s.wd.Quit(); err != nil {
			s.l.Warnw("failed to quit session", zap.Error(err))
			return
		}
		s.l.Infow("session closed", zap.Duration("duration", time.Since(s.started)))
	})
}
