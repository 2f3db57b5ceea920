// Package logger provides the leveled stderr logger used by the command
// line tools.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

const defaultFormat = "%{time:15:04:05.000} %{color}%{level:-8s}%{color:reset} %{module}: %{message}"

// NewLogger returns a logger writing formatted, leveled records to stderr.
// Unrecognized level names fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}
