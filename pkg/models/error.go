package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ConfigurationErr   ErrorKind = "configuration error"
	SessionCreationErr ErrorKind = "session creation error"
	TimeoutErr         ErrorKind = "timeout error"
	InteractionErr     ErrorKind = "interaction error"
	AssertionErr       ErrorKind = "assertion error"
)

// Expected reports whether the kind is an ordinary end state of a scenario step
// (a wait ran out, a click had no effect, a verification did not match) as opposed
// to a fatal defect of the environment.
func (k ErrorKind) Expected() bool {
	switch k {
	case TimeoutErr, InteractionErr, AssertionErr:
		return true
	default:
		return false
	}
}

type KindError interface {
	error
	Kind() ErrorKind
}

type JourneyError struct {
	kind  ErrorKind
	stage string
	err   error
}

func NewJourneyError(kind ErrorKind, stage string, err error) *JourneyError {
	return &JourneyError{
		kind:  kind,
		stage: stage,
		err:   err,
	}
}

func (e *JourneyError) Kind() ErrorKind {
	return e.kind
}

func (e *JourneyError) Stage() string {
	return e.stage
}

func (e *JourneyError) Error() string {
	if e.stage == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.stage, e.err.Error())
}

func (e *JourneyError) Unwrap() error {
	return e.err
}

func NewConfigurationError(err error) *JourneyError {
	return NewJourneyError(ConfigurationErr, "", err)
}

func NewSessionCreationError(err error) *JourneyError {
	return NewJourneyError(SessionCreationErr, "", err)
}

// NewTimeoutError builds a timeout carrying the stage specific failure message.
// cause is the last transient error observed while polling, it may be nil.
func NewTimeoutError(msg string, cause error) *JourneyError {
	err := errors.New(msg)
	if cause != nil {
		err = errors.Wrapf(cause, "%s (last error)", msg)
	}
	return NewJourneyError(TimeoutErr, "", err)
}

func NewInteractionError(stage string, err error) *JourneyError {
	return NewJourneyError(InteractionErr, stage, err)
}

func NewAssertionError(format string, args ...any) *JourneyError {
	return NewJourneyError(AssertionErr, "", errors.Errorf(format, args...))
}

// IsKind checks every typed error in the chain, so an interaction error caused by
// a timeout matches both InteractionErr and TimeoutErr.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if e, ok := err.(KindError); ok && e.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// KindOf returns the outermost typed error kind in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var e KindError
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return "", false
}
