package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("debug", "json", &buf)
	require.NoError(t, err)

	log.Debug("Categories listed", zap.Int("total", 12))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Categories listed", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "catalog-api", entry["service"])
	assert.EqualValues(t, 12, entry["total"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("warn", "console", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_Invalid(t *testing.T) {
	_, err := NewWithWriter("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithWriter("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)

	assert.Panics(t, func() { Must("loud", "json") })
}
