package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/product/queries/list_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/delete_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/update_product"
)

// listProducts serves the storefront catalog, which is always the admin's.
func (s *Server) listProducts(c echo.Context) error {
	products, err := s.queries.ListProducts.Execute(c.Request().Context(), &list_products.Request{
		UserID: s.opts.AdminUserID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

func (s *Server) createProduct(c echo.Context) error {
	var form productForm
	images, err := readForm(c, &form, "product_images")
	if err != nil {
		return s.fail(c, err)
	}
	fields, err := form.fields()
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.commands.CreateProduct.Execute(c.Request().Context(), &create_product.Request{
		UserID: identity(c).ID,
		Fields: fields,
		Images: images,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": created,
	})
}

func (s *Server) updateProduct(c echo.Context) error {
	var form productForm
	images, err := readForm(c, &form, "product_images")
	if err != nil {
		return s.fail(c, err)
	}
	fields, err := form.fields()
	if err != nil {
		return s.fail(c, err)
	}
	existing, err := form.existingImages()
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.commands.UpdateProduct.Execute(c.Request().Context(), &update_product.Request{
		UserID:         identity(c).ID,
		ProductID:      c.Param("id"),
		Fields:         fields,
		ExistingImages: existing,
		Images:         images,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": updated,
	})
}

type deleteProductsBody struct {
	IDs []string `json:"ids"`
}

func (s *Server) deleteProducts(c echo.Context) error {
	var body deleteProductsBody
	if err := bindJSON(c, &body); err != nil {
		return s.fail(c, err)
	}

	n, err := s.commands.DeleteProducts.Execute(c.Request().Context(), &delete_products.Request{
		UserID: identity(c).ID,
		IDs:    body.IDs,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Products deleted successfully",
		"deleted": n,
	})
}
