// Package logging sets up the append-only run log. Every external command
// and every applied change lands here with a timestamp; the file lives next
// to the executable so it survives reinstalls of the settings document.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

type Config struct {
	Path    string
	Level   string
	Console bool
}

// Open builds the logger and returns a closer for the log file. Failure to
// open the file is returned as an error: the caller treats it as fatal,
// since an unlogged run of this tool is not acceptable.
func Open(cfg Config) (zerolog.Logger, io.Closer, error) {
	zerolog.TimeFieldFormat = timeFormat

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	writers := []io.Writer{zerolog.SyncWriter(file)}
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat})
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()
	return log, file, nil
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO", "":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
