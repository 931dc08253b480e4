package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// SetupLogger points the global logger at a console writer on stderr and
// sets the level from the -debug / -trace flags.
func SetupLogger(debug, trace bool) *zerolog.Logger {
	return SetupLoggerWithOutput(os.Stderr, debug, trace)
}

func SetupLoggerWithOutput(out io.Writer, debug, trace bool) *zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if trace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	return &log.Logger
}
