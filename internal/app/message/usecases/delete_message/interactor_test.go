package delete_message

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/testutil"
)

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))

	t.Run("deletes own message", func(t *testing.T) {
		repo := testutil.NewMessageRepo(domain.Snapshot{ID: "m1", UserID: "u1", Email: "a@b.co", Message: "hi"})
		ob := testutil.NewRecordingOutbox()
		it := NewInteractor(repo, ob, testutil.NewRecordingApplier(), clk)

		dto, err := it.Execute(ctx, &Request{UserID: "u1", MessageID: "m1"})
		require.NoError(t, err)
		assert.Equal(t, "m1", dto.ID)
		assert.Empty(t, repo.Stored)
		assert.Equal(t, []string{"message.deleted"}, ob.Types())
	})

	t.Run("another user's message stays", func(t *testing.T) {
		repo := testutil.NewMessageRepo(domain.Snapshot{ID: "m1", UserID: "u1", Email: "a@b.co", Message: "hi"})
		it := NewInteractor(repo, testutil.NewRecordingOutbox(), testutil.NewRecordingApplier(), clk)

		_, err := it.Execute(ctx, &Request{UserID: "u2", MessageID: "m1"})
		assert.ErrorIs(t, err, domain.ErrDeleteFailed)
		assert.Contains(t, repo.Stored, "m1")
	})

	t.Run("missing message", func(t *testing.T) {
		it := NewInteractor(testutil.NewMessageRepo(), testutil.NewRecordingOutbox(), testutil.NewRecordingApplier(), clk)
		_, err := it.Execute(ctx, &Request{UserID: "u1", MessageID: "nope"})
		assert.ErrorIs(t, err, domain.ErrDeleteFailed)
	})
}
