package limit

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/journey/internal/common/clock"
	"github.com/selebrow/journey/pkg/models"
	"github.com/selebrow/journey/pkg/quota"
)

type waiter struct {
	granted chan struct{}
	since   time.Time
}

// LimitQuotaAuthorizer grants grid session slots in arrival order
type LimitQuotaAuthorizer struct {
	limit     int
	allocated int
	m         sync.RWMutex
	waiters   *list.List
	qLimit    int
	now       clock.NowFunc
	l         *zap.SugaredLogger
}

func NewLimitQuotaAuthorizer(limit, qLimit int, l *zap.Logger) *LimitQuotaAuthorizer {
	logger := l.Sugar()
	logger.Infow("initializing session quota", zap.Int("limit", limit), zap.Int("queue_limit", qLimit))
	return &LimitQuotaAuthorizer{
		limit:   limit,
		waiters: list.New(),
		qLimit:  qLimit,
		now:     time.Now,
		l:       logger,
	}
}

func (q *LimitQuotaAuthorizer) Reserve(ctx context.Context) error {
	q.m.Lock()
	// a newcomer never overtakes scenarios already waiting
	if q.waiters.Len() == 0 && q.allocated < q.limit {
		defer q.m.Unlock()
		q.allocated++
		q.l.Debugw("session slot reserved", zap.Int("allocated", q.allocated))
		return nil
	}

	if q.waiters.Len() >= q.qLimit {
		defer q.m.Unlock()
		return models.NewSessionCreationError(errors.Errorf("session queue is full: %s", q.statsLocked()))
	}

	w := &waiter{granted: make(chan struct{}), since: q.now()}
	e := q.waiters.PushBack(w)
	q.l.Debugw("waiting for session slot", zap.Int("queued", q.waiters.Len()))
	q.m.Unlock()

	select {
	case <-w.granted:
		return nil
	case <-ctx.Done():
	}

	q.m.Lock()
	defer q.m.Unlock()
	select {
	case <-w.granted:
		// handed over by Release while ctx was being cancelled
		return nil
	default:
	}
	q.waiters.Remove(e)
	waited := q.now().Sub(w.since)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return models.NewSessionCreationError(
			errors.Wrapf(ctx.Err(), "no free session slot after %s: %s", waited.Round(time.Millisecond), q.statsLocked()))
	}
	return errors.Wrapf(ctx.Err(), "session slot wait cancelled: %s", q.statsLocked())
}

func (q *LimitQuotaAuthorizer) Release() int {
	q.m.Lock()
	defer q.m.Unlock()

	if e := q.waiters.Front(); e != nil {
		w, _ := q.waiters.Remove(e).(*waiter)
		close(w.granted)
		q.l.Debugw("session slot handed over",
			zap.Duration("waited", q.now().Sub(w.since)),
			zap.Int("allocated", q.allocated),
			zap.Int("queued", q.waiters.Len()),
		)
		return q.allocated
	}

	if q.allocated < 1 {
		q.l.Warnf("session slot underrun detected, resetting to 0: allocated=%d", q.allocated)
		q.allocated = 0
	} else {
		q.allocated--
		q.l.Debugw("session slot released", zap.Int("allocated", q.allocated))
	}
	return q.allocated
}

func (q *LimitQuotaAuthorizer) Limit() int {
	return q.limit
}

func (q *LimitQuotaAuthorizer) Allocated() int {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.allocated
}

func (q *LimitQuotaAuthorizer) Stats() quota.Stats {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.statsLocked()
}

func (q *LimitQuotaAuthorizer) statsLocked() quota.Stats {
	return quota.Stats{
		Limit:      q.limit,
		Allocated:  q.allocated,
		Queued:     q.waiters.Len(),
		QueueLimit: q.qLimit,
	}
}
