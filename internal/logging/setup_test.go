package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
		timestamp     bool
		caller        bool
	}{
		{name: "trace", logLevel: "trace", expectedLevel: log.DebugLevel, timestamp: true, caller: true},
		{name: "debug", logLevel: "debug", expectedLevel: log.DebugLevel, timestamp: true},
		{name: "info", logLevel: "info", expectedLevel: log.InfoLevel},
		{name: "warn", logLevel: "warn", expectedLevel: log.WarnLevel},
		{name: "warning alias", logLevel: "warning", expectedLevel: log.WarnLevel},
		{name: "error", logLevel: "error", expectedLevel: log.ErrorLevel},
		{name: "mixed case", logLevel: " DeBuG ", expectedLevel: log.DebugLevel, timestamp: true},
		{name: "unknown defaults to info", logLevel: "loud", expectedLevel: log.InfoLevel},
		{name: "empty defaults to info", logLevel: "", expectedLevel: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, timestamp, caller := parseLevel(tt.logLevel)
			assert.Equal(t, tt.expectedLevel, lvl)
			assert.Equal(t, tt.timestamp, timestamp)
			assert.Equal(t, tt.caller, caller)
		})
	}
}

func TestSetupHandlerText_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerText("warn", buf))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message", "key", "value")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestSetupHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("trace", buf))

	logger.Debug("json message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, `"msg":"json message"`)
	assert.Contains(t, output, `"key":"value"`)
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"source"`)
}

func TestSetupHandlerJSON_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("error", buf))

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "info message")
	assert.NotContains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}

	textHandler := New(Options{Level: "info", Output: buf})
	jsonHandler := New(Options{Level: "info", Format: "JSON", Output: buf})

	assert.IsType(t, &log.Logger{}, textHandler)
	assert.IsType(t, &slog.JSONHandler{}, jsonHandler)
}

func TestSetupLogger(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	buf := &bytes.Buffer{}
	logger := SetupLogger(Options{Level: "debug", Format: FormatJSON, Output: buf})
	require.NotNil(t, logger)

	slog.Debug("from default logger")
	assert.Contains(t, buf.String(), "from default logger")
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestOpenOutput(t *testing.T) {
	t.Run("stderr by default", func(t *testing.T) {
		w, err := OpenOutput("")
		require.NoError(t, err)
		assert.Equal(t, os.Stderr, w)
	})

	t.Run("stdout", func(t *testing.T) {
		w, err := OpenOutput("stdout")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w)
	})

	t.Run("file path creates directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "launcher.log")
		w, err := OpenOutput(path)
		require.NoError(t, err)

		f, ok := w.(*os.File)
		require.True(t, ok)
		t.Cleanup(func() { _ = f.Close() })

		_, err = f.WriteString("hello\n")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
	})

	t.Run("file scheme", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheme.log")
		w, err := OpenOutput("file://" + path)
		require.NoError(t, err)
		if f, ok := w.(*os.File); ok {
			_ = f.Close()
		}
		assert.FileExists(t, path)
	})

	t.Run("unsupported", func(t *testing.T) {
		w, err := OpenOutput("syslog://localhost")
		require.Error(t, err)
		assert.Nil(t, w)
	})
}
