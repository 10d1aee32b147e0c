package mark_read

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/testutil"
)

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)

	setup := func() (*Interactor, *testutil.MessageRepo, *testutil.RecordingOutbox, *testutil.RecordingApplier) {
		repo := testutil.NewMessageRepo(
			domain.Snapshot{ID: "m1", UserID: "u1", Email: "a@b.co", Message: "hi"},
			domain.Snapshot{ID: "m2", UserID: "u1", Email: "a@b.co", Message: "again", Read: true},
		)
		ob := testutil.NewRecordingOutbox()
		applier := testutil.NewRecordingApplier()
		return NewInteractor(repo, ob, applier, clock.NewMockClock(now)), repo, ob, applier
	}

	t.Run("marks read", func(t *testing.T) {
		it, repo, ob, applier := setup()
		dto, err := it.Execute(ctx, &Request{UserID: "u1", MessageID: "m1"})
		require.NoError(t, err)
		assert.True(t, dto.Read)
		assert.True(t, repo.Stored["m1"].Read)
		assert.Equal(t, []string{"message.read"}, ob.Types())
		assert.Equal(t, 1, applier.Commits)
	})

	t.Run("already read writes nothing", func(t *testing.T) {
		it, _, ob, applier := setup()
		dto, err := it.Execute(ctx, &Request{UserID: "u1", MessageID: "m2"})
		require.NoError(t, err)
		assert.True(t, dto.Read)
		assert.Empty(t, ob.Events)
		assert.Zero(t, applier.Commits)
	})

	t.Run("another user's message", func(t *testing.T) {
		it, repo, _, applier := setup()
		_, err := it.Execute(ctx, &Request{UserID: "u2", MessageID: "m1"})
		assert.ErrorIs(t, err, domain.ErrUpdateFailed)
		assert.ErrorIs(t, err, apperr.ErrNotFoundOrUnauthorized)
		assert.False(t, repo.Stored["m1"].Read)
		assert.Zero(t, applier.Commits)
	})

	t.Run("missing id", func(t *testing.T) {
		it, _, _, _ := setup()
		_, err := it.Execute(ctx, &Request{UserID: "u1"})
		assert.ErrorIs(t, err, domain.ErrMissingMessageID)
	})
}
