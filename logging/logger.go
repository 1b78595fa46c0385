package logging

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// New returns a logger that writes one human-readable line per event to w. Debug events are
// dropped unless debug is true. Output is colored only when w is a terminal that fatih/color
// would color.
func New(debug bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	_, isFile := w.(*os.File)
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.StampMilli,
		NoColor:    !isFile || color.NoColor,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Component returns a logger whose events are tagged with the name of the part of the program
// that logged them.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
