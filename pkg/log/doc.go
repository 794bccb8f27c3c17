// Package log creates [log/slog] handlers backed by charmbracelet/log.
package log
