package main

import (
	"io"

	"github.com/atlanticdynamic/crlauncher/internal/logging"
)

// SetupLogger configures the default logger based on provided log level and format
func SetupLogger(logLevel, logFormat string, w io.Writer) {
	logging.SetupLogger(logging.Options{Level: logLevel, Format: logFormat, Output: w})
}
