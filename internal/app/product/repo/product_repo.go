package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/models/m_product"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo() contracts.ProductRepository {
	return &ProductRepo{model: m_product.NewModel()}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(domainToData(product))
}

// UpdateMut creates a mutation for the dirty fields of product.
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	data := domainToData(product)
	updates := make(map[string]interface{})
	for _, field := range changes.DirtyFields() {
		switch field {
		case domain.FieldSKUID:
			updates[m_product.SKUID] = data.SKUID
		case domain.FieldName:
			updates[m_product.ProductName] = data.ProductName
		case domain.FieldDescription:
			updates[m_product.ProductDescription] = data.ProductDescription
		case domain.FieldPrice:
			updates[m_product.ProductPrice] = data.ProductPrice
		case domain.FieldSalesPrice:
			updates[m_product.SalesPrice] = data.SalesPrice
		case domain.FieldDiscount:
			updates[m_product.ProductDiscount] = data.ProductDiscount
		case domain.FieldDiscountType:
			updates[m_product.ProductDiscountType] = data.ProductDiscountType
		case domain.FieldStock:
			updates[m_product.ProductStock] = data.ProductStock
		case domain.FieldStatus:
			updates[m_product.Status] = data.Status
		case domain.FieldCategories:
			updates[m_product.ProductCategories] = data.ProductCategories
		case domain.FieldSizes:
			updates[m_product.ProductSizes] = data.ProductSizes
		case domain.FieldColors:
			updates[m_product.ProductColors] = data.ProductColors
		case domain.FieldImages:
			updates[m_product.ProductImages] = data.ProductImages
		}
	}
	updates[m_product.UpdatedAt] = data.UpdatedAt

	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation removing the product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetOwned loads a product owned by userID inside txn.
func (r *ProductRepo) GetOwned(ctx context.Context, txn committer.Txn, userID, productID string) (*domain.Product, error) {
	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFoundOrUnauthorized
		}
		return nil, apperr.Store(err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	if data.UserID != userID {
		return nil, domain.ErrProductNotFoundOrUnauthorized
	}

	return dataToDomain(&data), nil
}

// OwnedIDs returns the ids among ids that belong to userID.
func (r *ProductRepo) OwnedIDs(ctx context.Context, txn committer.Txn, userID string, ids []string) ([]string, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ID).
		Where(query.Eq(m_product.UserID, userID)).
		Where(query.In(m_product.ID, ids)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	owned := make([]string, 0, len(ids))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Store(err)
		}
		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse product id: %w", err)
		}
		owned = append(owned, id)
	}
	return owned, nil
}

func domainToData(p *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		SKUID:               nullString(p.SKUID()),
		ProductName:         p.Name(),
		ProductDescription:  nullString(p.Description()),
		ProductPrice:        *p.Price().Rat(),
		ProductDiscountType: nullString(p.DiscountType()),
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
		data.SalesPrice = spanner.NullNumeric{Numeric: *sp.Rat(), Valid: true}
	}
	if d := p.Discount(); d != nil {
		data.ProductDiscount = spanner.NullInt64{Int64: *d, Valid: true}
	}
	return data
}

func dataToDomain(data *m_product.Data) *domain.Product {
	snap := domain.Snapshot{
		ID:           data.ID,
		UserID:       data.UserID,
		SKUID:        stringPtr(data.SKUID),
		Name:         data.ProductName,
		Description:  stringPtr(data.ProductDescription),
		Price:        money.FromRat(&data.ProductPrice),
		DiscountType: stringPtr(data.ProductDiscountType),
		Stock:        data.ProductStock,
		Status:       data.Status,
		Categories:   data.ProductCategories,
		Sizes:        data.ProductSizes,
		Colors:       data.ProductColors,
		Images:       data.ProductImages,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.SalesPrice.Valid {
		snap.SalesPrice = money.FromRat(&data.SalesPrice.Numeric)
	}
	if data.ProductDiscount.Valid {
		d := data.ProductDiscount.Int64
		snap.Discount = &d
	}
	return domain.ReconstructProduct(snap)
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func stringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.StringVal
	return &s
}
