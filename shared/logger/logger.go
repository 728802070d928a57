package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger tagged with the given service name.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
