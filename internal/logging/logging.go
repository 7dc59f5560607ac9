package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	Log = zerolog.New(output).
		Level(zerolog.ErrorLevel).
		With().
		Timestamp().
		Logger()
	zerolog.TimeFieldFormat = time.RFC3339
}

// Setup switches between the quiet default (errors only) and verbose
// operational logging.
func Setup(verbose bool) {
	level := zerolog.ErrorLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	Log = Log.Level(level)
}
