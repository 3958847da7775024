package models

import "time"

type ScenarioStatus string

const (
	StatusPassed ScenarioStatus = "passed"
	StatusFailed ScenarioStatus = "failed"
)

type ScenarioResult struct {
	status    ScenarioStatus
	reason    string
	err       error
	title     string
	sessionID string
	duration  time.Duration
}

func NewPassedResult(title, sessionID, reason string, duration time.Duration) ScenarioResult {
	return ScenarioResult{
		status:    StatusPassed,
		reason:    reason,
		title:     title,
		sessionID: sessionID,
		duration:  duration,
	}
}

// NewFailedResult reports err's message as the failure reason
func NewFailedResult(title, sessionID string, err error, duration time.Duration) ScenarioResult {
	return ScenarioResult{
		status:    StatusFailed,
		reason:    err.Error(),
		err:       err,
		title:     title,
		sessionID: sessionID,
		duration:  duration,
	}
}

func (r ScenarioResult) Status() ScenarioStatus {
	return r.status
}

func (r ScenarioResult) Passed() bool {
	return r.status == StatusPassed
}

func (r ScenarioResult) Reason() string {
	return r.reason
}

func (r ScenarioResult) Err() error {
	return r.err
}

func (r ScenarioResult) Title() string {
	return r.title
}

func (r ScenarioResult) SessionID() string {
	return r.sessionID
}

func (r ScenarioResult) Duration() time.Duration {
	return r.duration
}
