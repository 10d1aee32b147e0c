package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	n   int
	err error
}

func (s stubRunner) RunOnce(context.Context) (int, error) {
	return s.n, s.err
}

func TestRunOnce(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		err := runOnce(context.Background(), stubRunner{n: 3}, zerolog.New(&buf))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "relay batch complete")
	})

	t.Run("failure is returned", func(t *testing.T) {
		var buf bytes.Buffer
		storeErr := errors.New("spanner unavailable")
		err := runOnce(context.Background(), stubRunner{err: storeErr}, zerolog.New(&buf))
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Contains(t, buf.String(), "relay batch failed")
	})
}
