package log

import (
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var Log = New(zapcore.InfoLevel)

func New(level zapcore.LevelEnabler) logr.Logger {
	return zap.New(zap.UseDevMode(true), zap.Level(level), func(o *zap.Options) {
		o.TimeEncoder = zapcore.RFC3339TimeEncoder
	})
}

// SetLevel replaces Log with a logger at the named level (debug, info, warn, error).
func SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log = New(l)
	return nil
}

func Error(err error, msg string, keysAndValues ...interface{}) {
	Log.Error(err, msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	Log.Info(msg, keysAndValues...)
}
