// Package sysutil holds process-level helpers: log level and output setup,
// and small string utilities shared by the command and service layers.
package sysutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLogLevel configures the global zerolog level based on a string value.
// Supported values (case-insensitive): debug, info, warn, error, fatal, panic.
func SetLogLevel(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info", "":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// LogOptions selects where the global logger writes.
type LogOptions struct {
	Level     string
	Pretty    bool   // human-readable console output on stdout
	File      string // when set, JSON lines also go to a rotating file
	MaxSizeMB int
}

// SetupLogger points the global zerolog logger at stdout and, optionally, a
// rotating file. The returned closer flushes the file; it is a no-op when no
// file is configured.
func SetupLogger(opts LogOptions) io.Closer {
	SetLogLevel(opts.Level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var console io.Writer = os.Stdout
	if opts.Pretty {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if strings.TrimSpace(opts.File) == "" {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return nopCloser{}
	}

	size := opts.MaxSizeMB
	if size <= 0 {
		size = 50
	}
	file := &lumberjack.Logger{
		Filename:  opts.File,
		MaxSize:   size, // megabytes
		LocalTime: false,
		Compress:  true,
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, file)).With().Timestamp().Logger()
	return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FirstNonEmpty returns the first non-empty string from a variadic list.
// If all values are empty, it returns "".
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
