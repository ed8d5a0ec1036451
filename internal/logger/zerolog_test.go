package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Shell", "tab opened", map[string]interface{}{"path": "/tmp/a.txt"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Shell", entry["component"])
	assert.Equal(t, "tab opened", entry["message"])
	assert.Equal(t, "/tmp/a.txt", entry["path"])
}

func TestZerologAdapterErrorAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Shell", "dropped", nil)
	log.Info("Shell", "dropped", nil)
	assert.Zero(t, buf.Len())

	log.Error("Store", errors.New("disk full"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "Store", entry["component"])
}

func TestZerologAdapterTypedFieldsAndErrorMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("Shell", errors.New("permission denied"), map[string]interface{}{
		OpKey:    "save",
		"bytes":  42,
		"ok":     false,
		"took":   1500 * time.Millisecond,
		"exts":   []string{".txt", ".py"},
		"nested": struct{ N int }{N: 1},
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "save failed", entry["message"])
	assert.Equal(t, "permission denied", entry["error"])
	assert.Equal(t, float64(42), entry["bytes"])
	assert.Equal(t, false, entry["ok"])
	assert.Equal(t, float64(1500), entry["took"])
	assert.Equal(t, []interface{}{".txt", ".py"}, entry["exts"])
	assert.Equal(t, map[string]interface{}{"N": float64(1)}, entry["nested"])
}

func TestZerologAdapterReusesComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("Shell", "one", nil)
	log.Info("Shell", "two", nil)
	log.Warning("Store", "three", nil)

	assert.Len(t, log.components, 2)
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	var last map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[2], &last))
	assert.Equal(t, "Store", last["component"])
	assert.Equal(t, "warn", last["level"])
}
