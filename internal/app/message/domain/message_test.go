package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	empty := ""

	m, err := NewMessage("m1", "u1", Input{Name: &empty, Email: "a@b.co", Message: "hello"}, now)
	require.NoError(t, err)
	assert.False(t, m.Read())
	assert.Nil(t, m.Name())
	assert.Nil(t, m.Subject())
	require.Len(t, m.DomainEvents(), 1)
	assert.Equal(t, "message.received", m.DomainEvents()[0].EventType())

	_, err = NewMessage("m1", "u1", Input{Email: "a@b.co"}, now)
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = NewMessage("m1", "u1", Input{Message: "hi"}, now)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestMessage_MarkRead(t *testing.T) {
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	m := ReconstructMessage(Snapshot{ID: "m1", UserID: "u1", Email: "a@b.co", Message: "x"})

	assert.True(t, m.MarkRead(now))
	assert.True(t, m.Read())
	assert.Equal(t, now, m.UpdatedAt())
	assert.Len(t, m.DomainEvents(), 1)

	m.ClearEvents()
	assert.False(t, m.MarkRead(now.Add(time.Hour)))
	assert.True(t, m.Read())
	assert.Equal(t, now, m.UpdatedAt())
	assert.Empty(t, m.DomainEvents())
}
