package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger. Development gets a human console writer
// at debug level; production logs JSON at info.
func New(environment string) zerolog.Logger {
	var output io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if environment != "production" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "hostelhub-api").
		Str("env", environment).
		Logger()
}
