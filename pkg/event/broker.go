package event

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/selebrow/journey/pkg/event/models"
)

type EventBroker interface {
	Subscribe(eventTypes ...string) <-chan models.IEvent
	Publish(event models.IEvent)
}

type Option func(b *EventBrokerImpl)

// WithPublishTimeout lets a full subscriber drain for up to d before the event is dropped for it
func WithPublishTimeout(d time.Duration) Option {
	return func(b *EventBrokerImpl) {
		b.publishTimeout = d
	}
}

type EventBrokerImpl struct {
	mtx            sync.RWMutex
	subs           map[string][]chan models.IEvent
	bSize          int
	publishTimeout time.Duration
	closed         bool
	dropped        atomic.Int64
	l              *zap.SugaredLogger
}

func NewEventBrokerImpl(bufferSize int, l *zap.Logger, opts ...Option) *EventBrokerImpl {
	b := &EventBrokerImpl{
		subs:  make(map[string][]chan models.IEvent),
		bSize: bufferSize,
		l:     l.Sugar(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe returns a single channel receiving all of eventTypes, it is closed on ShutDown
func (b *EventBrokerImpl) Subscribe(eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	ch := make(chan models.IEvent, b.bSize)
	if b.closed {
		close(ch)
		return ch
	}
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}
	return ch
}

func (b *EventBrokerImpl) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.closed {
		b.l.Debugw("event published after shutdown", zap.String("type", event.EventType()))
		return
	}
	for _, ch := range b.subs[event.EventType()] {
		if !b.deliver(ch, event) {
			b.dropped.Add(1)
			b.l.With(zap.String("type", event.EventType())).
				Warnf("dropping published event, subscriber is full: length=%d", len(ch))
		}
	}
}

func (b *EventBrokerImpl) deliver(ch chan models.IEvent, event models.IEvent) bool {
	select {
	case ch <- event:
		return true
	default:
	}
	if b.publishTimeout <= 0 {
		return false
	}

	t := time.NewTimer(b.publishTimeout)
	defer t.Stop()
	select {
	case ch <- event:
		return true
	case <-t.C:
		return false
	}
}

func (b *EventBrokerImpl) Dropped() int64 {
	return b.dropped.Load()
}

func (b *EventBrokerImpl) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	closed := make(map[chan models.IEvent]bool)
	for et, chs := range b.subs {
		for _, ch := range chs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.l.Infow("event broker shutdown completed", zap.Int64("dropped", b.dropped.Load()))
	return nil
}
