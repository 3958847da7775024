package models

import (
	"time"

	"github.com/selebrow/journey/pkg/models"
)

const (
	ScenarioStartedEventType  = "ScenarioStarted"
	ScenarioFinishedEventType = "ScenarioFinished"
	SessionOpenedEventType    = "SessionOpened"
	SessionClosedEventType    = "SessionClosed"
)

type ScenarioStarted struct {
	Title string
}

type ScenarioFinished struct {
	Result models.ScenarioResult
}

type SessionOpened struct {
	Title         string
	SessionID     string
	StartDuration time.Duration
}

type SessionClosed struct {
	Title           string
	SessionID       string
	SessionDuration time.Duration
}

func NewScenarioStartedEvent(s ScenarioStarted) *Event[ScenarioStarted] {
	return NewEvent(ScenarioStartedEventType, now(), s)
}

func NewScenarioFinishedEvent(s ScenarioFinished) *Event[ScenarioFinished] {
	return NewEvent(ScenarioFinishedEventType, now(), s)
}

func NewSessionOpenedEvent(s SessionOpened) *Event[SessionOpened] {
	return NewEvent(SessionOpenedEventType, now(), s)
}

func NewSessionClosedEvent(s SessionClosed) *Event[SessionClosed] {
	return NewEvent(SessionClosedEventType, now(), s)
}
