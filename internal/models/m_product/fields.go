package m_product

const (
	TableName = "products"

	ID                  = "id"
	UserID              = "user_id"
	SKUID               = "skuid"
	ProductName         = "product_name"
	ProductDescription  = "product_description"
	ProductPrice        = "product_price"
	SalesPrice          = "sales_price"
	ProductDiscount     = "product_discount"
	ProductDiscountType = "product_discount_type"
	ProductStock        = "product_stock"
	Status              = "status"
	ProductCategories   = "product_categories"
	ProductSizes        = "product_sizes"
	ProductColors       = "product_colors"
	ProductImages       = "product_images"
	CreatedAt           = "created_at"
	UpdatedAt           = "updated_at"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{
	ID, UserID, SKUID, ProductName, ProductDescription, ProductPrice, SalesPrice,
	ProductDiscount, ProductDiscountType, ProductStock, Status, ProductCategories,
	ProductSizes, ProductColors, ProductImages, CreatedAt, UpdatedAt,
}
