package create_coupon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/testutil"
)

func TestCreateCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	newInteractor := func() (*Interactor, *testutil.CouponRepo, *testutil.RecordingOutbox, *testutil.RecordingApplier) {
		repo := testutil.NewCouponRepo()
		ob := testutil.NewRecordingOutbox()
		applier := testutil.NewRecordingApplier()
		it := NewInteractor(repo, ob, applier, clock.NewMockClock(now))
		it.newID = func() string { return "c-new" }
		return it, repo, ob, applier
	}

	t.Run("creates", func(t *testing.T) {
		it, repo, ob, applier := newInteractor()
		dto, err := it.Execute(ctx, &Request{UserID: "u1", Input: domain.Input{
			Code: "spring", DiscountType: domain.DiscountFixed, DiscountValue: money.FromInt(5),
		}})
		require.NoError(t, err)

		assert.Equal(t, "c-new", dto.ID)
		assert.Equal(t, "SPRING", dto.Code)
		assert.Equal(t, float64(5), dto.DiscountValue)
		assert.Equal(t, now, dto.ValidFrom)
		assert.True(t, dto.IsActive)
		assert.Len(t, repo.Inserted, 1)
		assert.Equal(t, []string{"coupon.created"}, ob.Types())
		assert.Equal(t, 2, applier.Count())
	})

	t.Run("validation", func(t *testing.T) {
		it, _, _, applier := newInteractor()
		_, err := it.Execute(ctx, &Request{UserID: "u1", Input: domain.Input{Code: "X"}})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
		assert.Zero(t, applier.Commits)
	})

	t.Run("duplicate code", func(t *testing.T) {
		it, _, _, applier := newInteractor()
		applier.Err = status.Error(codes.AlreadyExists, "unique index violated")
		_, err := it.Execute(ctx, &Request{UserID: "u1", Input: domain.Input{
			Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: money.FromInt(1),
		}})
		assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	})

	t.Run("store error passes message through", func(t *testing.T) {
		it, _, _, applier := newInteractor()
		applier.Err = status.Error(codes.Unavailable, "store offline")
		_, err := it.Execute(ctx, &Request{UserID: "u1", Input: domain.Input{
			Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: money.FromInt(1),
		}})
		assert.ErrorIs(t, err, apperr.ErrStore)
		assert.Contains(t, apperr.Message(err), "store offline")
	})
}
