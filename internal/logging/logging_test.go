package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "json", slog.LevelWarn))

	logger.Info("dropped")
	logger.Warn("push failed", "kind", "client", "id", "c1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "push failed", entry["msg"])
	assert.Equal(t, "c1", entry["id"])

	buf.Reset()
	slog.New(NewHandler(&buf, "text", slog.LevelInfo)).Info("cycle finished", "pushed", 2)
	assert.Contains(t, buf.String(), "msg=\"cycle finished\" pushed=2")
}

func TestNew_File(t *testing.T) {
	cfg := config.DefaultLog()
	cfg.File = filepath.Join(t.TempDir(), "client.log")

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	logger.Info("hello", "user", "therapist1")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "user=therapist1")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.DefaultLog()
	cfg.Level = "loud"

	_, _, err := New(cfg)
	assert.ErrorContains(t, err, "unknown log level")
}
