// Package log provides the logging surface used throughout the emulator.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the interface the emulator logs through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, logging at info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewWithLevel returns a Logger backed by logrus, logging at the
// given level (e.g. "debug", "info", "error").
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogrus(lvl), nil
}

// NewWithOutput returns a Logger backed by logrus that writes to w.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := newLogrus(level)
	l.SetOutput(w)
	return l
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	})
	return l
}
