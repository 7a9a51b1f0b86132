package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/internal/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []string{log.FormatConsole, log.FormatDev} {
		buf := &bytes.Buffer{}
		l, err := log.New(buf, format, slog.LevelInfo)
		require.NoError(t, err, format)

		l.Debug("hidden message")
		l.Info("scanned header", "fields", 3, "error", errors.New("boom"))

		assert.NotContains(t, buf.String(), "hidden message", format)
		assert.Contains(t, buf.String(), "scanned header", format)
		assert.Contains(t, buf.String(), "boom", format)
	}
}

func TestNew_None(t *testing.T) {
	t.Parallel()

	l, err := log.New(&bytes.Buffer{}, log.FormatNone, slog.LevelDebug)
	require.NoError(t, err)
	assert.Same(t, log.Noop, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestNew_Unknown(t *testing.T) {
	t.Parallel()

	_, err := log.New(&bytes.Buffer{}, "xml", slog.LevelInfo)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := log.ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = log.ParseLevel("WARN")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = log.ParseLevel("loud")
	assert.Error(t, err)
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Subject", log.StringValue([]byte("Subject")).LogValue().String())
	assert.Equal(t, "To", log.StringValue("To").LogValue().String())
}
