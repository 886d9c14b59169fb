package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Options{Level: tt.level, Console: &buf})
			require.NoError(t, err)

			l.Debug("drag started")
			l.Info("drag started")
			l.Warn("drag started")
			l.Error("drag started")
			_ = l.Sync()

			out := buf.String()
			for _, exp := range tt.expected {
				assert.Contains(t, out, exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, out, exc)
			}
		})
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.log")
	cfg := FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	l, err := New(Options{Level: "debug", File: cfg})
	require.NoError(t, err)
	l.Named("gizmo").Debug("handle hovered", zap.String("handle", "translate_x/arrow"))
	require.NoError(t, l.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(content)
	assert.Contains(t, line, "DEBUG")
	assert.Contains(t, line, "gizmo")
	assert.Contains(t, line, "handle hovered")
	assert.Contains(t, line, "translate_x/arrow")
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotate.log")

	l, err := New(Options{Level: "info", File: FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2}})
	require.NoError(t, err)

	long := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		l.Info(long, zap.Int("frame", i))
	}
	require.NoError(t, l.Sync())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var rotated int
	for _, e := range entries {
		if e.Name() != "rotate.log" && strings.HasPrefix(e.Name(), "rotate-") {
			rotated++
		}
	}
	assert.Positive(t, rotated)
}

func TestNewWithoutSinks(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := New(Options{Level: "verbose"})
	assert.Error(t, err)
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/gizmo.log")
	assert.Equal(t, "/tmp/gizmo.log", cfg.Path)
	assert.Equal(t, 20, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 7, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
}
