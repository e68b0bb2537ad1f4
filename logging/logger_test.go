package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func decodeLines(t require.TestingT, buf *bytes.Buffer) []map[string]any {
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{ServiceName: "lensctl", MinLevel: LevelDebug, Output: &buf})

	logger.Info(context.Background(), "path updated", String("path", "address.street"), Int("count", 1))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "path updated", entries[0]["message"])
	assert.Equal(t, "lensctl", entries[0]["service"])
	assert.Equal(t, "address.street", entries[0]["path"])
	assert.EqualValues(t, 1, entries[0]["count"])
	assert.NotEmpty(t, entries[0]["timestamp"])
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{MinLevel: LevelWarn, Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error", Error(errors.New("boom")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
	assert.Equal(t, "unknown", entries[0]["service"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{ServiceName: "svc", MinLevel: LevelInfo, Output: &buf}).
		With(String("file", "user.yaml"), Bool("write", true))

	logger.Info(context.Background(), "loaded")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "user.yaml", entries[0]["file"])
	assert.Equal(t, true, entries[0]["write"])
}

func TestLoggerRedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{MinLevel: LevelInfo, Output: &buf})

	logger.Info(context.Background(), "login",
		String("api_key", "abc123"),
		String("note", "mail adam@example.com"),
	)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, redactedValue, entries[0]["api_key"])
	assert.Equal(t, "mail "+piiValue, entries[0]["note"])
}

func TestProperty_CorrelationIDPropagation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.StringMatching(`[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`).Draw(t, "id")
		message := rapid.StringMatching(`[a-zA-Z0-9 ]{1,60}`).Draw(t, "message")

		var buf bytes.Buffer
		logger := New(Config{MinLevel: LevelDebug, Output: &buf})
		logger.Debug(WithCorrelationID(context.Background(), id), message)

		entries := decodeLines(t, &buf)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0]["correlation_id"] != id {
			t.Fatalf("correlation_id = %v, want %s", entries[0]["correlation_id"], id)
		}
		if entries[0]["message"] != message {
			t.Fatalf("message = %v, want %s", entries[0]["message"], message)
		}
	})
}

func TestLevels(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LookupLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Error(context.Background(), "ignored")
	assert.NotNil(t, logger.With(String("k", "v")))
}
