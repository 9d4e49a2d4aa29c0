package cmd

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// newLogger returns a console logger writing to w. The level is warn,
// info with verbose, and debug when SHAPEGEN_DEBUG parses as true
// (SHAPEGEN_DEBUG=1). Colors are used only when w is a terminal and
// NO_COLOR is unset.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    os.Getenv("NO_COLOR") != "" || !isTerminal(w),
		TimeFormat: time.TimeOnly,
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	if debug, _ := strconv.ParseBool(os.Getenv("SHAPEGEN_DEBUG")); debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
