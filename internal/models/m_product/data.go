package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of products.
type Data struct {
	ID                  string              `spanner:"id"`
	UserID              string              `spanner:"user_id"`
	SKUID               spanner.NullString  `spanner:"skuid"`
	ProductName         string              `spanner:"product_name"`
	ProductDescription  spanner.NullString  `spanner:"product_description"`
	ProductPrice        big.Rat             `spanner:"product_price"`
	SalesPrice          spanner.NullNumeric `spanner:"sales_price"`
	ProductDiscount     spanner.NullInt64   `spanner:"product_discount"`
	ProductDiscountType spanner.NullString  `spanner:"product_discount_type"`
	ProductStock        int64               `spanner:"product_stock"`
	Status              string              `spanner:"status"`
	ProductCategories   []string            `spanner:"product_categories"`
	ProductSizes        []string            `spanner:"product_sizes"`
	ProductColors       []string            `spanner:"product_colors"`
	ProductImages       []string            `spanner:"product_images"`
	CreatedAt           time.Time           `spanner:"created_at"`
	UpdatedAt           time.Time           `spanner:"updated_at"`
}
