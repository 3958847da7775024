package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selebrow/journey/pkg/config"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"
)

var (
	SetupLogger  = NewConsoleLogger
	inKubernetes = detectKubernetes

	once   sync.Once
	logger *zap.Logger
)

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
	})
	return logger
}

// NewConsoleLogger builds the process logger from JOURNEY_LOG_* variables,
// registered secrets are masked in everything it writes
func NewConsoleLogger() *zap.Logger {
	lvl := config.ZapLogLevel(env("LOG_LEVEL"), zap.InfoLevel)
	output := env("LOG_OUTPUT")

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = lvl >= zap.InfoLevel
	zc.DisableCaller = lvl >= zap.InfoLevel
	if output != "" {
		zc.OutputPaths = []string{output}
	}

	var opts []zap.Option
	if useJSON() {
		zc.Encoding = encodingJSON
		zc.EncoderConfig = jsonEncoderConfig(zc.EncoderConfig)
	} else {
		zc.Encoding = encodingConsole
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		// colors only for a terminal
		if output == "" {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			opts = append(opts, windowsConsole(zc.EncoderConfig, lvl)...)
		}
	}
	opts = append(opts, zap.WrapCore(newRedactCore))

	z, err := zc.Build(opts...)
	if err != nil {
		panic(err)
	}
	return z
}

func jsonEncoderConfig(ec zapcore.EncoderConfig) zapcore.EncoderConfig {
	ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	ec.TimeKey = "@timestamp"
	ec.MessageKey = "message"
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

// windowsConsole workaround for Windows terminal color output
func windowsConsole(ec zapcore.EncoderConfig, lvl zapcore.Level) []zap.Option {
	if runtime.GOOS != "windows" {
		return nil
	}
	return []zap.Option{zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
		return zapcore.NewCore(
			zapcore.NewConsoleEncoder(ec),
			zapcore.AddSync(colorable.NewColorableStdout()),
			lvl,
		)
	})}
}

func detectKubernetes() bool {
	return os.Getenv("KUBERNETES_SERVICE_HOST") != ""
}

// useJSON explicit format wins, runners in k8s collect json by default
func useJSON() bool {
	switch strings.ToLower(env("LOG_FORMAT")) {
	case encodingJSON:
		return true
	case encodingConsole:
		return false
	default:
		return inKubernetes()
	}
}

func env(name string) string {
	return os.Getenv(fmt.Sprintf("%s_%s", config.ConfigPrefix, name))
}
