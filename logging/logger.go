// Package logging is a small leveled logger with zap and logrus backends.
// The codec itself never logs; the benchmark harness does.
package logging

import (
	"fmt"
	"strings"
)

// Fields is a minimal structured field map for logs.
type Fields map[string]any

type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type Nop struct{}

func (Nop) Debug(string, Fields) {}
func (Nop) Info(string, Fields)  {}
func (Nop) Warn(string, Fields)  {}
func (Nop) Error(string, Fields) {}

const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendNop    = "nop"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendZap, BackendLogrus, BackendNop}

var levels = []string{"debug", "info", "warn", "error"}

// ValidLevel reports whether level is one of debug, info, warn, error.
func ValidLevel(level string) bool {
	for _, l := range levels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

// New builds a logger for backend at the given level. Output goes to stderr.
func New(backend, level string) (Logger, error) {
	if !ValidLevel(level) {
		return nil, fmt.Errorf("logging: unknown level %q", level)
	}
	switch strings.ToLower(backend) {
	case BackendZap:
		return NewZap(level)
	case BackendLogrus:
		return NewLogrus(level)
	case BackendNop, "":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("logging: unknown backend %q", backend)
	}
}
