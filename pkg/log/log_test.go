package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/slashpath/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  slog.Level
		err   bool
	}{
		"error":   {input: "error", want: slog.LevelError},
		"warn":    {input: "WARN", want: slog.LevelWarn},
		"warning": {input: "warning", want: slog.LevelWarn},
		"empty":   {input: "", want: slog.LevelWarn},
		"info":    {input: "info", want: slog.LevelInfo},
		"debug":   {input: "debug", want: slog.LevelDebug},
		"trace":   {input: "trace", want: slog.LevelDebug},
		"invalid": {input: "loud", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.err {
				require.ErrorIs(t, err, log.ErrInvalidLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "info", log.JSONFormat)
		require.NoError(t, err)

		slog.New(h).Info("hello", "style", "windows")

		out := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "hello", out["msg"])
		assert.Equal(t, "windows", out["style"])
	})

	t.Run("logfmt", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "debug", log.LogfmtFormat)
		require.NoError(t, err)

		slog.New(h).Debug("hello", "style", "unix")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "style=unix")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "warn", log.TextFormat)
		require.NoError(t, err)

		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))

		slog.New(h).Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "info", "xml")
		require.ErrorIs(t, err, log.ErrInvalidFormat)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "loud", "text")
		require.ErrorIs(t, err, log.ErrInvalidLevel)
	})
}

func TestNewWithCurrentConfig(t *testing.T) {
	t.Setenv(log.EnvLogLevel, "not-a-level")

	require.NotNil(t, log.NewWithCurrentConfig())
}
