package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to w, typically the command's stderr,
// so stdout carries only the solver output.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
