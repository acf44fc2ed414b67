package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "simulation.log")

	logger, err := New(Config{File: path, Output: &console})
	require.NoError(t, err)

	logger.Info("book added", "isbn", "X1")
	logger.Debug("hidden")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, console.String(), string(data))
	assert.Contains(t, console.String(), `msg="book added" isbn=X1`)
	assert.NotContains(t, console.String(), "hidden")
	assert.Regexp(t, regexp.MustCompile(`^time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}" `), console.String())
}

func TestNew_QuietWithoutFile(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(Config{Quiet: true, Output: &console})
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Empty(t, console.String())
	assert.NoError(t, logger.Close())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}
