package domain

import (
	"time"

	"github.com/light-bringer/storefront-admin/internal/pkg/money"
)

// Field names for change tracking.
const (
	FieldSKUID        = "skuid"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldSalesPrice   = "sales_price"
	FieldDiscount     = "discount"
	FieldDiscountType = "discount_type"
	FieldStock        = "stock"
	FieldStatus       = "status"
	FieldCategories   = "categories"
	FieldSizes        = "sizes"
	FieldColors       = "colors"
	FieldImages       = "images"
)

// DefaultStatus is used when a product is created without a status.
const DefaultStatus = "In Stock"

// MaxImages is the most images a single product request may upload.
const MaxImages = 6

// Fields carries the product attributes supplied by a request.
// A nil pointer or nil slice means the attribute was not supplied.
type Fields struct {
	SKUID        *string
	Name         *string
	Description  *string
	Price        *money.Money
	SalesPrice   *money.Money
	Discount     *int64
	DiscountType *string
	Stock        *int64
	Status       *string
	Categories   []string
	Sizes        []string
	Colors       []string
}

// Product is the aggregate for a catalog entry owned by one user.
type Product struct {
	id           string
	userID       string
	skuid        *string
	name         string
	description  *string
	price        *money.Money
	salesPrice   *money.Money
	discount     *int64
	discountType *string
	stock        int64
	status       string
	categories   []string
	sizes        []string
	colors       []string
	images       []string
	createdAt    time.Time
	updatedAt    time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewProduct creates a product owned by userID with the given images.
func NewProduct(id, userID string, f Fields, images []string, now time.Time) (*Product, error) {
	if f.Name == nil || *f.Name == "" {
		return nil, ErrEmptyName
	}
	if f.Price == nil || f.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if f.SalesPrice != nil && f.SalesPrice.IsNegative() {
		return nil, ErrInvalidSalesPrice
	}

	p := &Product{
		id:           id,
		userID:       userID,
		skuid:        f.SKUID,
		name:         *f.Name,
		description:  f.Description,
		price:        f.Price,
		salesPrice:   f.SalesPrice,
		discount:     f.Discount,
		discountType: f.DiscountType,
		status:       DefaultStatus,
		categories:   orEmpty(f.Categories),
		sizes:        orEmpty(f.Sizes),
		colors:       orEmpty(f.Colors),
		images:       orEmpty(images),
		createdAt:    now,
		updatedAt:    now,
		changes:      NewChangeTracker(),
	}
	if f.Stock != nil {
		p.stock = *f.Stock
	}
	if f.Status != nil && *f.Status != "" {
		p.status = *f.Status
	}

	p.recordEvent(&ProductCreatedEvent{
		ProductID:  p.id,
		UserID:     p.userID,
		Name:       p.name,
		Price:      p.price.String(),
		ImageCount: len(p.images),
		CreatedAt:  now,
	})

	return p, nil
}

// Snapshot is the stored state of a product, used to rebuild the aggregate.
type Snapshot struct {
	ID           string
	UserID       string
	SKUID        *string
	Name         string
	Description  *string
	Price        *money.Money
	SalesPrice   *money.Money
	Discount     *int64
	DiscountType *string
	Stock        int64
	Status       string
	Categories   []string
	Sizes        []string
	Colors       []string
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructProduct rebuilds a stored product with a clean change set.
func ReconstructProduct(s Snapshot) *Product {
	price := s.Price
	if price == nil {
		price = money.Zero()
	}
	return &Product{
		id:           s.ID,
		userID:       s.UserID,
		skuid:        s.SKUID,
		name:         s.Name,
		description:  s.Description,
		price:        price,
		salesPrice:   s.SalesPrice,
		discount:     s.Discount,
		discountType: s.DiscountType,
		stock:        s.Stock,
		status:       s.Status,
		categories:   orEmpty(s.Categories),
		sizes:        orEmpty(s.Sizes),
		colors:       orEmpty(s.Colors),
		images:       orEmpty(s.Images),
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		changes:      NewChangeTracker(),
	}
}

func (p *Product) ID() string                  { return p.id }
func (p *Product) UserID() string              { return p.userID }
func (p *Product) SKUID() *string              { return p.skuid }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() *string        { return p.description }
func (p *Product) Price() *money.Money         { return p.price }
func (p *Product) SalesPrice() *money.Money    { return p.salesPrice }
func (p *Product) Discount() *int64            { return p.discount }
func (p *Product) DiscountType() *string       { return p.discountType }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) Status() string              { return p.status }
func (p *Product) Categories() []string        { return p.categories }
func (p *Product) Sizes() []string             { return p.sizes }
func (p *Product) Colors() []string            { return p.colors }
func (p *Product) Images() []string            { return p.images }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// OwnedBy reports whether userID owns the product.
func (p *Product) OwnedBy(userID string) bool {
	return p.userID == userID
}

// Apply merges the supplied fields into the product. Unsupplied fields keep
// their stored value.
func (p *Product) Apply(f Fields) error {
	if f.Name != nil && *f.Name == "" {
		return ErrEmptyName
	}
	if f.Price != nil && f.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if f.SalesPrice != nil && f.SalesPrice.IsNegative() {
		return ErrInvalidSalesPrice
	}

	if f.SKUID != nil {
		p.skuid = f.SKUID
		p.changes.MarkDirty(FieldSKUID)
	}
	if f.Name != nil {
		p.name = *f.Name
		p.changes.MarkDirty(FieldName)
	}
	if f.Description != nil {
		p.description = f.Description
		p.changes.MarkDirty(FieldDescription)
	}
	if f.Price != nil {
		p.price = f.Price
		p.changes.MarkDirty(FieldPrice)
	}
	if f.SalesPrice != nil {
		p.salesPrice = f.SalesPrice
		p.changes.MarkDirty(FieldSalesPrice)
	}
	if f.Discount != nil {
		p.discount = f.Discount
		p.changes.MarkDirty(FieldDiscount)
	}
	if f.DiscountType != nil {
		p.discountType = f.DiscountType
		p.changes.MarkDirty(FieldDiscountType)
	}
	if f.Stock != nil {
		p.stock = *f.Stock
		p.changes.MarkDirty(FieldStock)
	}
	if f.Status != nil && *f.Status != "" {
		p.status = *f.Status
		p.changes.MarkDirty(FieldStatus)
	}
	if f.Categories != nil {
		p.categories = f.Categories
		p.changes.MarkDirty(FieldCategories)
	}
	if f.Sizes != nil {
		p.sizes = f.Sizes
		p.changes.MarkDirty(FieldSizes)
	}
	if f.Colors != nil {
		p.colors = f.Colors
		p.changes.MarkDirty(FieldColors)
	}
	return nil
}

// MergeImages sets the image list to keep followed by uploaded. A nil keep
// retains every stored image.
func (p *Product) MergeImages(keep []string, uploaded []string) {
	if keep == nil && len(uploaded) == 0 {
		return
	}
	base := p.images
	if keep != nil {
		base = keep
	}
	merged := make([]string, 0, len(base)+len(uploaded))
	merged = append(merged, base...)
	merged = append(merged, uploaded...)
	p.images = merged
	p.changes.MarkDirty(FieldImages)
}

// MarkUpdated stamps the update time and records a single update event for
// every change made since the product was loaded. It is a no-op without changes.
func (p *Product) MarkUpdated(now time.Time) {
	if !p.changes.HasChanges() {
		return
	}
	p.updatedAt = now
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:     p.id,
		UserID:        p.userID,
		ChangedFields: p.changes.DirtyFields(),
		UpdatedAt:     now,
	})
}

// ClearEvents drops recorded events once they have been persisted.
func (p *Product) ClearEvents() {
	p.events = nil
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
