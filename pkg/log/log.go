package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const (
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
	FormatText   = "text"
)

// ErrInvalidArgument indicates an unknown level or format name.
var ErrInvalidArgument = errors.New("invalid argument")

// Formats lists the supported format names.
var Formats = []string{FormatText, FormatLogfmt, FormatJSON}

// HandlerOption configures the handler returned by [CreateHandler].
type HandlerOption func(*log.Logger)

// WithColorProfile forces a color profile. Use [termenv.Ascii] to disable
// colors.
func WithColorProfile(p termenv.Profile) HandlerOption {
	return func(l *log.Logger) {
		l.SetColorProfile(p)
	}
}

// WithTimestamp toggles the timestamp on each record.
func WithTimestamp(enabled bool) HandlerOption {
	return func(l *log.Logger) {
		l.SetReportTimestamp(enabled)
	}
}

// CreateHandler creates a [slog.Handler] writing to w from level and format
// names.
func CreateHandler(w io.Writer, level, format string, opts ...HandlerOption) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	formatter, err := getFormatter(format)
	if err != nil {
		return nil, err
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           log.Level(lvl),
		Formatter:       formatter,
		ReportTimestamp: true,
	})
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// GetLevel parses a level name. The empty string is [slog.LevelInfo].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "panic", "fatal", "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidArgument, level)
}

func getFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	}

	return 0, fmt.Errorf("%w: unknown log format %q, expected one of %v", ErrInvalidArgument, format, Formats)
}
