package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"story": "toast", "origin": "bottom"})
	log.Info("rendering story")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rendering story", entry["message"])
	require.Equal(t, "toast", entry["story"])
	require.Equal(t, "bottom", entry["origin"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "ocean.yaml"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "ocean.yaml", entry["theme"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerWithAddsField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("focus", "icon_button.filled.default").Debug("focus moved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "icon_button.filled.default", entry["focus"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.With("k", "v"))
	require.Nil(t, nilLogger.WithFields(map[string]any{"k": "v"}))
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("boom"), "ignored")
		Nop().With("k", "v").Warn("ignored")
	})
}

func TestLoggerWithFieldsWritesKeysSorted(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"width": 80, "story": "toast", "height": 24}).Debug("story rendered")

	line := buf.String()
	height, story, width := strings.Index(line, `"height"`), strings.Index(line, `"story"`), strings.Index(line, `"width"`)
	require.True(t, height >= 0 && height < story && story < width, line)
}

func TestLoggerHumanReadableWithoutColor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.With("theme", "ocean.yaml").Warn("theme loaded")

	out := buf.String()
	require.Contains(t, out, "theme loaded")
	require.Contains(t, out, "theme=ocean.yaml")
	require.NotContains(t, out, "\x1b[")
}
