// Package logger provides the configurable logger shared by feltrun
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced under `go test` unless the debug build tag is set.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/consensys/feltrun/debug"
)

var root zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	root = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		root = zerolog.Nop()
	}
}

// Logger returns the root logger.
func Logger() zerolog.Logger {
	return root
}

// With returns a sublogger tagged with a component name.
func With(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// SetOutput changes the output of the root logger.
func SetOutput(w io.Writer) {
	root = root.Output(w)
}

// Set overrides the root logger.
func Set(l zerolog.Logger) {
	root = l
}

// Disable disables logging.
func Disable() {
	root = zerolog.Nop()
}
