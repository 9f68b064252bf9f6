package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func TestInfoWritesJSONLine(t *testing.T) {
	buf := captureOutput(t)

	Info("analyze.received", map[string]any{"request_id": "r1", "err": errors.New("boom")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "analyze.received", entry["msg"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotEmpty(t, entry["ts"])
}

func TestReservedKeysWin(t *testing.T) {
	buf := captureOutput(t)

	Error("http.error", map[string]any{"level": "info", "msg": "spoofed"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "http.error", entry["msg"])
}

func TestDebugGatedByFlag(t *testing.T) {
	buf := captureOutput(t)
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	Debug("hidden", nil)
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown", nil)
	assert.True(t, strings.Contains(buf.String(), `"msg":"shown"`))
}
