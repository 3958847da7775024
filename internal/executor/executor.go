package executor

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/selebrow/journey/pkg/models"
)

const (
	scriptPrefix = "browserstack_executor: "

	actionSetSessionName   = "setSessionName"
	actionSetSessionStatus = "setSessionStatus"
	actionAnnotate         = "annotate"

	// grid truncates longer reasons anyway
	maxReasonLen = 255
)

type AnnotationLevel string

const (
	LevelInfo  AnnotationLevel = "info"
	LevelError AnnotationLevel = "error"
)

type ScriptExecutor interface {
	ExecuteScript(script string, args []interface{}) (interface{}, error)
}

// Executor vendor diagnostic channel, failures are logged and never returned
type Executor interface {
	SetSessionName(name string)
	SetSessionStatus(status models.ScenarioStatus, reason string)
	Annotate(data string, level AnnotationLevel)
}

type command struct {
	Action    string `json:"action"`
	Arguments any    `json:"arguments"`
}

type BrowserStackExecutor struct {
	se ScriptExecutor
	l  *zap.SugaredLogger
}

func NewBrowserStackExecutor(se ScriptExecutor, l *zap.Logger) *BrowserStackExecutor {
	return &BrowserStackExecutor{
		se: se,
		l:  l.Sugar(),
	}
}

func (e *BrowserStackExecutor) SetSessionName(name string) {
	e.execute(actionSetSessionName, map[string]string{"name": name})
}

func (e *BrowserStackExecutor) SetSessionStatus(status models.ScenarioStatus, reason string) {
	e.execute(actionSetSessionStatus, map[string]string{
		"status": string(status),
		"reason": truncate(reason, maxReasonLen),
	})
}

func (e *BrowserStackExecutor) Annotate(data string, level AnnotationLevel) {
	e.execute(actionAnnotate, map[string]string{
		"data":  data,
		"level": string(level),
	})
}

func (e *BrowserStackExecutor) execute(action string, args any) {
	script, err := Script(action, args)
	if err != nil {
		e.l.Warnw("failed to encode executor command", zap.String("action", action), zap.Error(err))
		return
	}
	if _, err := e.se.ExecuteScript(script, nil); err != nil {
		e.l.Warnw("executor command failed", zap.String("action", action), zap.Error(err))
		return
	}
	e.l.Debugw("executor command sent", zap.String("action", action))
}

// Script renders the executor command understood by the grid
func Script(action string, args any) (string, error) {
	data, err := json.Marshal(command{Action: action, Arguments: args})
	if err != nil {
		return "", err
	}
	return scriptPrefix + string(data), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
