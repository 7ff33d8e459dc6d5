package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Zap struct{ L *zap.Logger }

var _ Logger = Zap{}

// NewZap returns a production-configured zap logger at level.
func NewZap(level string) (Zap, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return Zap{}, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return Zap{}, err
	}
	return Zap{L: l}, nil
}

func (z Zap) Debug(msg string, f Fields) { z.L.Debug(msg, zf(f)...) }
func (z Zap) Info(msg string, f Fields)  { z.L.Info(msg, zf(f)...) }
func (z Zap) Warn(msg string, f Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Zap) Error(msg string, f Fields) { z.L.Error(msg, zf(f)...) }

// Sync flushes buffered entries.
func (z Zap) Sync() error { return z.L.Sync() }

func zf(f Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
