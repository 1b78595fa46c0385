package mixins

import (
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger sets the logger used for debug output about temp directories, environment
// restoration, stream capture and module unloading. It returns the previous logger. The
// default discards everything.
func SetLogger(l zerolog.Logger) zerolog.Logger {
	previous := logger
	logger = l
	return previous
}
