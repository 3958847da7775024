package limited

import (
	"sync"

	"github.com/tebeka/selenium"

	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/models"
)

type ReleaseFunc func() int

type LimitedSession struct {
	s       browser.Session
	release ReleaseFunc
	once    sync.Once
}

func NewLimitedSession(s browser.Session, rel ReleaseFunc) *LimitedSession {
	return &LimitedSession{
		s:       s,
		release: rel,
	}
}

func (s *LimitedSession) ID() string {
	return s.s.ID()
}

func (s *LimitedSession) Descriptor() models.CapabilityDescriptor {
	return s.s.Descriptor()
}

func (s *LimitedSession) Driver() selenium.WebDriver {
	return s.s.Driver()
}

func (s *LimitedSession) Close() {
	s.once.Do(func() {
		s.s.Close()
		s.release()
	})
}
