package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
)

// ProductDTO is the JSON shape of a product row.
type ProductDTO struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	SKUID               *string   `json:"skuid"`
	ProductName         string    `json:"product_name"`
	ProductDescription  *string   `json:"product_description"`
	ProductPrice        float64   `json:"product_price"`
	SalesPrice          *float64  `json:"sales_price"`
	ProductDiscount     *int64    `json:"product_discount"`
	ProductDiscountType *string   `json:"product_discount_type"`
	ProductStock        int64     `json:"product_stock"`
	Status              string    `json:"status"`
	ProductCategories   []string  `json:"product_categories"`
	ProductSizes        []string  `json:"product_sizes"`
	ProductColors       []string  `json:"product_colors"`
	ProductImages       []string  `json:"product_images"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewProductDTO renders an aggregate.
func NewProductDTO(p *domain.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		SKUID:               p.SKUID(),
		ProductName:         p.Name(),
		ProductDescription:  p.Description(),
		ProductPrice:        p.Price().Float64(),
		ProductDiscount:     p.Discount(),
		ProductDiscountType: p.DiscountType(),
		ProductStock:        p.Stock(),
		Status:              p.Status(),
		ProductCategories:   p.Categories(),
		ProductSizes:        p.Sizes(),
		ProductColors:       p.Colors(),
		ProductImages:       p.Images(),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
	if sp := p.SalesPrice(); sp != nil {
		f := sp.Float64()
		dto.SalesPrice = &f
	}
	return dto
}

// ReadModel serves product listings without loading aggregates for writing.
type ReadModel interface {
	// ListByUser returns userID's products, newest first.
	ListByUser(ctx context.Context, userID string) ([]*ProductDTO, error)
}
