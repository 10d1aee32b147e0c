package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func mustMoney(t *testing.T, s string) *money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		p, err := NewProduct("p1", "u1", Fields{
			Name:  strPtr("Linen Shirt"),
			Price: mustMoney(t, "49.90"),
		}, []string{"https://img/1.png"}, now)
		require.NoError(t, err)

		assert.Equal(t, "p1", p.ID())
		assert.Equal(t, "u1", p.UserID())
		assert.Equal(t, DefaultStatus, p.Status())
		assert.Equal(t, int64(0), p.Stock())
		assert.Equal(t, []string{}, p.Categories())
		assert.Equal(t, []string{"https://img/1.png"}, p.Images())
		assert.Equal(t, now, p.CreatedAt())

		require.Len(t, p.DomainEvents(), 1)
		ev, ok := p.DomainEvents()[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "49.90", ev.Price)
		assert.Equal(t, "u1", ev.OwnerID())
		assert.Equal(t, 1, ev.ImageCount)
	})

	t.Run("supplied status and stock", func(t *testing.T) {
		p, err := NewProduct("p1", "u1", Fields{
			Name:   strPtr("Cap"),
			Price:  mustMoney(t, "0"),
			Stock:  intPtr(12),
			Status: strPtr("Out of Stock"),
		}, nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(12), p.Stock())
		assert.Equal(t, "Out of Stock", p.Status())
		assert.Equal(t, []string{}, p.Images())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := NewProduct("p1", "u1", Fields{Price: mustMoney(t, "1")}, nil, now)
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("price required and non negative", func(t *testing.T) {
		_, err := NewProduct("p1", "u1", Fields{Name: strPtr("x")}, nil, now)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewProduct("p1", "u1", Fields{Name: strPtr("x"), Price: mustMoney(t, "-1")}, nil, now)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative sales price", func(t *testing.T) {
		_, err := NewProduct("p1", "u1", Fields{
			Name:       strPtr("x"),
			Price:      mustMoney(t, "10"),
			SalesPrice: mustMoney(t, "-2"),
		}, nil, now)
		assert.ErrorIs(t, err, ErrInvalidSalesPrice)
	})
}

func stored(t *testing.T) *Product {
	return ReconstructProduct(Snapshot{
		ID:         "p1",
		UserID:     "u1",
		Name:       "Linen Shirt",
		Price:      mustMoney(t, "49.90"),
		Stock:      3,
		Status:     DefaultStatus,
		Categories: []string{"tops"},
		Images:     []string{"a.png", "b.png"},
	})
}

func TestProduct_Apply(t *testing.T) {
	t.Run("merges only supplied fields", func(t *testing.T) {
		p := stored(t)

		err := p.Apply(Fields{Stock: intPtr(7), Sizes: []string{"S", "M"}})
		require.NoError(t, err)

		assert.Equal(t, int64(7), p.Stock())
		assert.Equal(t, []string{"S", "M"}, p.Sizes())
		assert.Equal(t, "Linen Shirt", p.Name())
		assert.Equal(t, []string{"tops"}, p.Categories())
		assert.Equal(t, []string{FieldStock, FieldSizes}, p.Changes().DirtyFields())
	})

	t.Run("empty status is ignored", func(t *testing.T) {
		p := stored(t)
		require.NoError(t, p.Apply(Fields{Status: strPtr("")}))
		assert.False(t, p.Changes().HasChanges())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		p := stored(t)
		assert.ErrorIs(t, p.Apply(Fields{Name: strPtr("")}), ErrEmptyName)
		assert.False(t, p.Changes().HasChanges())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		p := stored(t)
		assert.ErrorIs(t, p.Apply(Fields{Price: mustMoney(t, "-0.01")}), ErrInvalidPrice)
	})
}

func TestProduct_MergeImages(t *testing.T) {
	t.Run("keep list then uploads", func(t *testing.T) {
		p := stored(t)
		p.MergeImages([]string{"a.png"}, []string{"new.png"})
		assert.Equal(t, []string{"a.png", "new.png"}, p.Images())
		assert.True(t, p.Changes().Dirty(FieldImages))
	})

	t.Run("no keep list appends to stored", func(t *testing.T) {
		p := stored(t)
		p.MergeImages(nil, []string{"c.png"})
		assert.Equal(t, []string{"a.png", "b.png", "c.png"}, p.Images())
	})

	t.Run("empty keep list prunes all", func(t *testing.T) {
		p := stored(t)
		p.MergeImages([]string{}, nil)
		assert.Equal(t, []string{}, p.Images())
		assert.True(t, p.Changes().Dirty(FieldImages))
	})

	t.Run("nothing supplied", func(t *testing.T) {
		p := stored(t)
		p.MergeImages(nil, nil)
		assert.False(t, p.Changes().HasChanges())
	})
}

func TestProduct_MarkUpdated(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single event for all changes", func(t *testing.T) {
		p := stored(t)
		require.NoError(t, p.Apply(Fields{Name: strPtr("Shirt"), Stock: intPtr(1)}))
		p.MergeImages(nil, []string{"c.png"})
		p.MarkUpdated(now)

		require.Len(t, p.DomainEvents(), 1)
		ev := p.DomainEvents()[0].(*ProductUpdatedEvent)
		assert.Equal(t, []string{FieldName, FieldStock, FieldImages}, ev.ChangedFields)
		assert.Equal(t, now, p.UpdatedAt())

		p.ClearEvents()
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("no changes no event", func(t *testing.T) {
		p := stored(t)
		p.MarkUpdated(now)
		assert.Empty(t, p.DomainEvents())
		assert.True(t, p.UpdatedAt().IsZero())
	})
}

func TestChangeTracker(t *testing.T) {
	ct := NewChangeTracker()
	assert.False(t, ct.HasChanges())

	ct.MarkDirty(FieldName)
	ct.MarkDirty(FieldPrice)
	ct.MarkDirty(FieldName)

	assert.True(t, ct.Dirty(FieldName))
	assert.False(t, ct.Dirty(FieldStock))
	assert.Equal(t, []string{FieldName, FieldPrice}, ct.DirtyFields())

	ct.Clear()
	assert.False(t, ct.HasChanges())
}
