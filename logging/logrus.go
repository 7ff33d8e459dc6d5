package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logrus struct{ E *logrus.Entry }

var _ Logger = Logrus{}

// NewLogrus returns a text-formatted logrus logger at level.
func NewLogrus(level string) (Logrus, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return Logrus{}, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return Logrus{E: logrus.NewEntry(l)}, nil
}

func (l Logrus) Debug(msg string, f Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logrus) Info(msg string, f Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logrus) Warn(msg string, f Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logrus) Error(msg string, f Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
