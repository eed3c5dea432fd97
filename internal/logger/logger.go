package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
	Any      = zap.Any
)

type Field = zap.Field

var global = zap.NewNop()

// Init replaces the global logger. Level falls back to info when the given
// string does not parse.
func Init(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		l = zap.NewNop()
	}
	global = l
}

func L() *zap.Logger { return global }

func Sync() { _ = global.Sync() }
