package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(buf *bytes.Buffer) []map[string]any {
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestNew_ProductionLogsInfoAsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf), WithService("api"))

	log.Debug("hidden")
	log.WithFields(map[string]interface{}{"session_id": "s1"}).Info("visible")

	entries := lines(&buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["message"])
	assert.Equal(t, "api", entries[0]["service"])
	assert.Equal(t, "s1", entries[0]["session_id"])
	assert.Equal(t, "info", entries[0]["level"])
}

func TestNew_TestEnvironmentOnlyWarns(t *testing.T) {
	var buf bytes.Buffer
	log := New("test", WithOutput(&buf))

	log.Info("hidden")
	log.Error("failed", errors.New("boom"))

	entries := lines(&buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["error"])
}

func TestNew_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf), WithLevel("debug"))

	log.Debugf("value %d", 42)

	entries := lines(&buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "value 42", entries[0]["message"])
}

func TestNew_InvalidLevelKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf), WithLevel("loud"))

	log.Debug("hidden")
	log.Info("visible")

	assert.Len(t, lines(&buf), 1)
}
