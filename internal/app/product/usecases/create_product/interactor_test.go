package create_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/testutil"
)

type fixture struct {
	repo     *testutil.ProductRepo
	outbox   *testutil.RecordingOutbox
	applier  *testutil.RecordingApplier
	uploader *testutil.FakeUploader
	it       *Interactor
}

func setup() *fixture {
	f := &fixture{
		repo:     testutil.NewProductRepo(),
		outbox:   testutil.NewRecordingOutbox(),
		applier:  testutil.NewRecordingApplier(),
		uploader: testutil.NewFakeUploader(),
	}
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	f.it = NewInteractor(f.repo, f.outbox, f.applier, f.uploader, clk, 3)
	f.it.newID = func() string { return "p-new" }
	return f
}

func fields(name, price string) domain.Fields {
	p, _ := money.Parse(price)
	return domain.Fields{Name: &name, Price: p}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads then inserts with event", func(t *testing.T) {
		f := setup()
		dto, err := f.it.Execute(ctx, &Request{
			UserID: "u1",
			Fields: fields("Linen Shirt", "49.90"),
			Images: [][]byte{[]byte("a"), []byte("b")},
		})
		require.NoError(t, err)

		assert.Equal(t, "p-new", dto.ID)
		assert.Equal(t, "u1", dto.UserID)
		assert.Equal(t, 49.9, dto.ProductPrice)
		assert.Equal(t, domain.DefaultStatus, dto.Status)
		assert.Equal(t, []string{
			"https://img.test/products/u1/a",
			"https://img.test/products/u1/b",
		}, dto.ProductImages)

		require.Len(t, f.repo.Inserted, 1)
		assert.Equal(t, []string{"product.created"}, f.outbox.Types())
		assert.Equal(t, 1, f.applier.Commits)
		assert.Equal(t, 2, f.applier.Count())
		assert.Empty(t, f.repo.Inserted[0].DomainEvents())
	})

	t.Run("too many images", func(t *testing.T) {
		f := setup()
		images := make([][]byte, domain.MaxImages+1)
		for i := range images {
			images[i] = []byte{'x'}
		}
		_, err := f.it.Execute(ctx, &Request{UserID: "u1", Fields: fields("x", "1"), Images: images})
		assert.ErrorIs(t, err, domain.ErrTooManyImages)
		assert.Zero(t, f.uploader.Calls)
	})

	t.Run("invalid fields skip upload", func(t *testing.T) {
		f := setup()
		_, err := f.it.Execute(ctx, &Request{UserID: "u1", Fields: fields("", "1"), Images: [][]byte{[]byte("a")}})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
		assert.Zero(t, f.uploader.Calls)

		_, err = f.it.Execute(ctx, &Request{UserID: "u1", Fields: domain.Fields{Name: strPtr("x")}})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
		assert.Zero(t, f.applier.Commits)
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		f := setup()
		f.uploader.Fail = true
		_, err := f.it.Execute(ctx, &Request{UserID: "u1", Fields: fields("x", "1"), Images: [][]byte{[]byte("a")}})
		assert.ErrorIs(t, err, apperr.ErrUploadFailed)
		assert.Zero(t, f.applier.Commits)
	})

	t.Run("store failure", func(t *testing.T) {
		f := setup()
		f.applier.Err = assert.AnError
		_, err := f.it.Execute(ctx, &Request{UserID: "u1", Fields: fields("x", "1")})
		assert.ErrorIs(t, err, apperr.ErrStore)
	})
}

func strPtr(s string) *string { return &s }
