package wait

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/internal/common/clock"
	"github.com/selebrow/journey/pkg/models"
)

const (
	DefaultInterval = 50 * time.Millisecond

	errNoSuchElement = "no such element"
	errStaleElement  = "stale element reference"
)

// Condition is evaluated on every poll. ok reports whether it is satisfied,
// a non transient error aborts the wait.
type Condition[T any] func(ctx context.Context) (res T, ok bool, err error)

type Waiter struct {
	interval time.Duration
	now      clock.NowFunc
	l        *zap.SugaredLogger
}

func NewWaiter(interval time.Duration, now clock.NowFunc, l *zap.Logger) *Waiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Waiter{
		interval: interval,
		now:      now,
		l:        l.Sugar(),
	}
}

func (w *Waiter) Interval() time.Duration {
	return w.interval
}

// For polls cond until it is satisfied and returns its value. It fails with a
// timeout error carrying msg once timeout has elapsed, the condition is always
// evaluated one last time at the deadline.
func For[T any](ctx context.Context, w *Waiter, timeout time.Duration, msg string, cond Condition[T]) (T, error) {
	var (
		zero    T
		lastErr error
		polls   int
	)
	start := w.now()
	deadline := start.Add(timeout)

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		polls++
		res, ok, err := cond(ctx)
		switch {
		case err != nil && !IsTransient(err):
			return zero, err
		case err != nil:
			lastErr = err
		case ok:
			return res, nil
		}

		now := w.now()
		if !now.Before(deadline) {
			w.l.Debugw("wait timed out",
				zap.String("message", msg),
				zap.Duration("timeout", timeout),
				zap.Int("polls", polls))
			return zero, models.NewTimeoutError(msg, lastErr)
		}

		timer.Reset(min(w.interval, deadline.Sub(now)))
		select {
		case <-ctx.Done():
			return zero, errors.Wrap(ctx.Err(), msg)
		case <-timer.C:
		}
	}
}

// IsTransient reports DOM lookup errors that mean "not there yet": the element is
// missing or was detached by a navigation or re-render while polling.
func IsTransient(err error) bool {
	return hasWebDriverError(err, errNoSuchElement) || IsStale(err)
}

func IsStale(err error) bool {
	return hasWebDriverError(err, errStaleElement)
}

func hasWebDriverError(err error, code string) bool {
	if err == nil {
		return false
	}
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err == code
	}
	return strings.Contains(err.Error(), code)
}
