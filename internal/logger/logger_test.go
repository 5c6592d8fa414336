package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, New(tt.level))
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn doesn't log at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
		{"unknown config level defaults to info", "loud", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			require.Equal(t, tt.shouldLog, log.shouldLog(tt.logLevel))
		})
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithFormat("info", "text", &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	log.Debug(ctx, "hidden")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO] [req-1] formatted message: test 123")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithFormat("debug", "json", &buf)

	log.Warn(WithRequestID(context.Background(), "req-2"), "slow call %dms", 1500)
	log.Error(context.Background(), "no id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "slow call 1500ms", entry["msg"])
	require.Equal(t, "req-2", entry["request_id"])

	entry = nil
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	require.NotContains(t, entry, "request_id")
}

func TestRequestID(t *testing.T) {
	require.Equal(t, "", RequestID(context.Background()))
	require.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
