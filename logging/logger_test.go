package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Backends(t *testing.T) {
	for _, b := range Backends {
		l, err := New(b, "info")
		require.NoError(t, err, b)
		require.NotNil(t, l)
	}

	_, err := New("syslog", "info")
	assert.Error(t, err)

	_, err = New(BackendZap, "loud")
	assert.Error(t, err)
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("WARN"))
	assert.False(t, ValidLevel("trace"))
}

func TestZap_ForwardsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Zap{L: zap.New(core)}

	l.Info("encode done", Fields{"bytes": 232, "cycles": 10})
	l.Debug("no fields", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "encode done", entries[0].Message)
	assert.Equal(t, int64(232), entries[0].ContextMap()["bytes"])
	assert.Empty(t, entries[1].Context)
}

func TestLogrus_ForwardsFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l := Logrus{E: logrus.NewEntry(base)}

	l.Warn("slow cycle", Fields{"cycle": 3})
	assert.Contains(t, buf.String(), "slow cycle")
	assert.Contains(t, buf.String(), "cycle=3")
}
