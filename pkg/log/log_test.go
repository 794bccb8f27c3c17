package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want slog.Level
		err  bool
	}{
		"":        {want: slog.LevelInfo},
		"info":    {want: slog.LevelInfo},
		"DEBUG":   {want: slog.LevelDebug},
		"trace":   {want: slog.LevelDebug},
		"warn":    {want: slog.LevelWarn},
		"warning": {want: slog.LevelWarn},
		"error":   {want: slog.LevelError},
		"fatal":   {want: slog.LevelError},
		"verbose": {err: true},
	}
	for in, tc := range tcs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(in)
			if tc.err {
				require.ErrorIs(t, err, log.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(t *testing.T, out string)
		format string
	}{
		"text": {
			format: log.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "version saved")
				assert.Contains(t, out, "path=/tmp/version.yml")
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "level=info")
				assert.Contains(t, out, `msg="version saved"`)
				assert.Contains(t, out, "path=/tmp/version.yml")
			},
		},
		"json": {
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var rec map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &rec))
				assert.Equal(t, "version saved", rec["msg"])
				assert.Equal(t, "/tmp/version.yml", rec["path"])
			},
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			h, err := log.CreateHandler(buf, "info", tc.format,
				log.WithColorProfile(termenv.Ascii),
				log.WithTimestamp(false),
			)
			require.NoError(t, err)

			logger := slog.New(h)
			logger.Debug("hidden")
			logger.Info("version saved", "path", "/tmp/version.yml")

			assert.NotContains(t, buf.String(), "hidden")
			tc.check(t, buf.String())
		})
	}
}

func TestCreateHandlerErrors(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandler(&bytes.Buffer{}, "loud", log.FormatText)
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.CreateHandler(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}
