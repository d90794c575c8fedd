package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// logTimeFormat renders timestamps in the console output.
const logTimeFormat = "2006-01-02 15:04:05"

// newConsoleWriter formats events as "timestamp - LEVEL - message key=value".
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: logTimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			level, _ := i.(string)
			return "- " + levelName(level) + " -"
		},
	}
}

// levelName maps zerolog level strings onto the conventional names.
func levelName(level string) string {
	switch level {
	case "":
		return "???"
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "CRITICAL"
	default:
		return strings.ToUpper(level)
	}
}

// NewLogger returns a logger that appends to logPath and mirrors every event
// to console. The returned closer releases the log file.
func NewLogger(logPath string, console io.Writer, verbose bool) (zerolog.Logger, io.Closer, error) {
	if logPath == "" {
		logPath = DefaultLogFile
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	writers := []io.Writer{newConsoleWriter(f)}
	if console != nil {
		writers = append(writers, newConsoleWriter(console))
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, f, nil
}
