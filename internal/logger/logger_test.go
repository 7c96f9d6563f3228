package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-certform/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantPretty bool
		wantDebug  bool
	}{
		{name: "local", env: config.EnvLocal, wantPretty: true, wantDebug: true},
		{name: "dev", env: config.EnvDev, wantDebug: true},
		{name: "prod", env: config.EnvProd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.env, WithWriter(&buf))
			require.NotNil(t, log)

			_, pretty := log.Handler().(*PrettyHandler)
			assert.Equal(t, tt.wantPretty, pretty)
			assert.Equal(t, tt.wantDebug, log.Enabled(t.Context(), slog.LevelDebug))
			assert.True(t, log.Enabled(t.Context(), slog.LevelInfo))
		})
	}
}

func TestNewLevelOverride(t *testing.T) {
	log := New(config.EnvProd, WithLevel("debug"), WithWriter(&bytes.Buffer{}))
	assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))

	log = New(config.EnvLocal, WithLevel("error"), WithWriter(&bytes.Buffer{}))
	assert.False(t, log.Enabled(t.Context(), slog.LevelWarn))

	log = New(config.EnvProd, WithLevel("loud"), WithWriter(&bytes.Buffer{}))
	assert.False(t, log.Enabled(t.Context(), slog.LevelDebug))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	New(config.EnvDev, WithWriter(&buf)).Info("action dispatched", slog.String("action", "save"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "action dispatched", entry["msg"])
	assert.Equal(t, "save", entry["action"])
}

func TestPrettyHandler(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("session", "abc")).
		WithGroup("http")
	log.Warn("slow request", slog.Int("status", 200))

	out := buf.String()
	assert.Contains(t, out, "WARN: slow request")
	assert.Contains(t, out, `"session": "abc"`)
	assert.Contains(t, out, `"http.status": 200`)
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(t.Context(), slog.LevelError))
}
