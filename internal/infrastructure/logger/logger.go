package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger: a console writer in
// development, JSON lines otherwise.
func Setup(development bool) {
	setup(os.Stderr, development)
}

func setup(out io.Writer, development bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if development {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "gestao-obras").Logger()
}
