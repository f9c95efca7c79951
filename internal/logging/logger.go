// Package logging configures the diagnostic logger. Diagnostics always go to
// standard error; standard output carries only the formatted summary.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to w at the given level. An unknown level
// falls back to warn.
func New(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
		logger.SetLevel(lvl)
		logger.Warnf("Invalid log level '%s', using 'warn'", level)
		return logger
	}
	logger.SetLevel(lvl)

	return logger
}
