package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var exit = os.Exit

type ShutdownHook func(ctx context.Context) error

type Handler struct {
	hooks   map[any][]ShutdownHook
	timeout time.Duration
	c       chan os.Signal
	stop    chan struct{}
	once    sync.Once
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		hooks:   make(map[any][]ShutdownHook),
		timeout: timeout,
		c:       make(chan os.Signal, 2),
		stop:    make(chan struct{}),
		l:       l.Sugar(),
	}
}

// Watch returns a context cancelled on the first SIGINT/SIGTERM, a second signal
// terminates the process immediately
func (h *Handler) Watch(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	signal.Notify(h.c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer cancel()
		select {
		case sig := <-h.c:
			h.l.Infow("signal caught, stopping scenarios...", zap.String("signal", sig.String()))
			cancel()
		case <-h.stop:
			return
		}

		select {
		case sig := <-h.c:
			h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
			exit(1)
		case <-h.stop:
		}
	}()

	return ctx
}

// Shutdown stops watching signals and runs the registered hooks, it returns
// the process exit code for a failed shutdown
func (h *Handler) Shutdown() int {
	h.once.Do(func() {
		signal.Stop(h.c)
		close(h.stop)
	})

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	done := h.performShutdown(ctx)

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v", h.timeout)
		return 1
	case <-done:
		h.l.Debugf("shutdown completed in %v", time.Since(start))
		return 0
	}
}

func (h *Handler) RegisterShutdownHook(group any, hook ShutdownHook) {
	h.hooks[group] = append(h.hooks[group], hook)
}

func (h *Handler) performShutdown(ctx context.Context) <-chan struct{} {
	var wg sync.WaitGroup
	done := make(chan struct{})
	for _, s := range h.hooks {
		wg.Add(1)
		go func(hooks []ShutdownHook) {
			defer wg.Done()
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i](ctx); err != nil {
					h.l.Warnw("shutdown hook failed", zap.Error(err))
				}
			}
		}(s)
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	return done
}
