package log

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "*****"

var secrets = &secretSet{}

type secretSet struct {
	mu     sync.RWMutex
	values []string
	r      *strings.Replacer
}

// AddSecret masks s in every message and string field logged afterwards
func AddSecret(s string) {
	if s == "" {
		return
	}
	secrets.mu.Lock()
	defer secrets.mu.Unlock()
	for _, v := range secrets.values {
		if v == s {
			return
		}
	}
	secrets.values = append(secrets.values, s)
	pairs := make([]string, 0, len(secrets.values)*2)
	for _, v := range secrets.values {
		pairs = append(pairs, v, redacted)
	}
	secrets.r = strings.NewReplacer(pairs...)
}

func redact(s string) string {
	secrets.mu.RLock()
	r := secrets.r
	secrets.mu.RUnlock()
	if r == nil {
		return s
	}
	return r.Replace(s)
}

type redactCore struct {
	zapcore.Core
}

func newRedactCore(c zapcore.Core) zapcore.Core {
	return &redactCore{Core: c}
}

// With redacts fields when the child logger is created, secrets added later do not apply to them
func (c *redactCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactCore{Core: c.Core.With(redactFields(fields))}
}

func (c *redactCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *redactCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = redact(ent.Message)
	return c.Core.Write(ent, redactFields(fields))
}

func redactFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case zapcore.StringType:
			f.String = redact(f.String)
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok {
				f = zap.String(f.Key, redact(err.Error()))
			}
		case zapcore.StringerType:
			if s, ok := f.Interface.(fmt.Stringer); ok {
				f = zap.String(f.Key, redact(s.String()))
			}
		}
		out[i] = f
	}
	return out
}
