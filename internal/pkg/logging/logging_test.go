package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "warn")
		logger.Info().Msg("hidden")
		logger.Warn().Str("route", "/x").Msg("shown")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["message"])
		assert.Equal(t, "warn", line["level"])
		assert.Equal(t, "/x", line["route"])
		assert.Contains(t, line, "time")
	})

	t.Run("unknown level is info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "loud")
		logger.Debug().Msg("hidden")
		assert.Empty(t, buf.String())
		logger.Info().Msg("shown")
		assert.NotEmpty(t, buf.String())
	})
}
