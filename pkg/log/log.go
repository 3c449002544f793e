package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"

	// EnvLogLevel and EnvLogFormat configure [NewWithCurrentConfig].
	EnvLogLevel  = "SLASHPATH_LOG_LEVEL"
	EnvLogFormat = "SLASHPATH_LOG_FORMAT"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

var _ slog.Handler = (*charmlog.Logger)(nil)

// NewWithCurrentConfig creates a [slog.Logger] writing to stderr, configured
// from the environment. Unset or invalid values fall back to warn/text.
func NewWithCurrentConfig() *slog.Logger {
	h, err := CreateHandler(os.Stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
	if err != nil {
		h, _ = CreateHandler(os.Stderr, "warn", TextFormat)
	}

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] by strings. An empty level means
// warn and an empty format means text.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}

// GetLevel parses a log level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

// GetFormatter parses a log format name.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	}

	return charmlog.TextFormatter, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}
