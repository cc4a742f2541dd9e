package queue

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

func TestZerologAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Warn().
		Err(errors.New("boom")).
		Str("queue", ImageProcessingQueue).
		Int("retry_count", 2).
		Uint64("generation", 3).
		Dur("delay", time.Second).
		Msg("message scheduled for retry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "queue", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, ImageProcessingQueue, entry["queue"])
	assert.InDelta(t, 2, entry["retry_count"], 0)
	assert.InDelta(t, 3, entry["generation"], 0)
	assert.Equal(t, "message scheduled for retry", entry["message"])
}

func TestZerologAdapter_DisabledLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))

	assert.NotPanics(t, func() {
		adapter.Debug().Str("queue", ImageProcessingQueue).Int("n", 1).Msg("hidden")
	})

	adapter.Info().Msg("visible")
	adapter.Error().Msg("also visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var logger Logger = nopLogger{}

	assert.NotPanics(t, func() {
		logger.Info().Err(errors.New("x")).Str("k", "v").Dur("d", time.Second).Msg("ignored")
	})
}
