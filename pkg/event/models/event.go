package models

import (
	"fmt"
	"time"
)

var now = time.Now

type IEvent interface {
	EventTime() time.Time
	EventType() string
}

// Event scenario lifecycle notification carrying typed attributes
type Event[T any] struct {
	eventTime  time.Time
	eventType  string
	Attributes T
}

func (e *Event[T]) EventTime() time.Time {
	return e.eventTime
}

func (e *Event[T]) EventType() string {
	return e.eventType
}

func (e *Event[T]) String() string {
	return fmt.Sprintf("%s@%s %+v", e.eventType, e.eventTime.Format(time.RFC3339Nano), e.Attributes)
}

func NewEvent[T any](eventType string, evTime time.Time, attributes T) *Event[T] {
	return &Event[T]{
		eventTime:  evTime,
		eventType:  eventType,
		Attributes: attributes,
	}
}

// AttributesOf returns ev attributes when ev carries T
func AttributesOf[T any](ev IEvent) (T, bool) {
	if e, ok := ev.(*Event[T]); ok {
		return e.Attributes, true
	}
	var zero T
	return zero, false
}
