package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	RequestLog(&buf, "req-1", "", "GET", "/api/v1/devices", 404, 1500*time.Microsecond, "")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry.Level)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, 404, entry.Status)
	assert.Equal(t, 1.5, entry.DurationMs)

	buf.Reset()
	RequestLog(&buf, "req-2", "", "POST", "/x", 500, time.Millisecond, "boom")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "boom", entry.Error)
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, FromContext(context.Background()))
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", FromContext(ctx))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", true)
	log.Debug("hidden")
	log.Info("device added", "device_id", "SW013")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "device added", line["msg"])
	assert.Equal(t, "SW013", line["device_id"])
}
