package http

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"

	account "github.com/light-bringer/storefront-admin/internal/app/account/domain"
	product "github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// productForm is the multipart body of the product create and update routes.
// List attributes arrive as JSON array strings.
type productForm struct {
	SKUID          *string `schema:"skuid"`
	Name           *string `schema:"product_name"`
	Description    *string `schema:"product_description"`
	Price          *string `schema:"product_price"`
	SalesPrice     *string `schema:"sales_price"`
	Discount       *string `schema:"product_discount"`
	DiscountType   *string `schema:"product_discount_type"`
	Stock          *string `schema:"product_stock"`
	Status         *string `schema:"status"`
	Categories     *string `schema:"product_categories"`
	Sizes          *string `schema:"product_sizes"`
	Colors         *string `schema:"product_colors"`
	ExistingImages *string `schema:"existing_images"`
}

type profileForm struct {
	DisplayName *string `schema:"display_name"`
	PhoneNumber *string `schema:"phone_number"`
	Email       *string `schema:"email"`
}

// readForm decodes the text fields of a multipart or urlencoded body into dst
// and returns the bytes of every file sent under fileField.
func readForm(c echo.Context, dst interface{}, fileField string) ([][]byte, error) {
	values, files, err := formParts(c, fileField)
	if err != nil {
		return nil, err
	}
	if err := formDecoder.Decode(dst, values); err != nil {
		return nil, apperr.Validationf("invalid form: %v", err)
	}

	images := make([][]byte, 0, len(files))
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}

func formParts(c echo.Context, fileField string) (map[string][]string, []*multipart.FileHeader, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, apperr.Validationf("invalid multipart body: %v", err)
		}
		return form.Value, form.File[fileField], nil
	}
	values, err := c.FormParams()
	if err != nil {
		return nil, nil, apperr.Validationf("invalid form body: %v", err)
	}
	return values, nil, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	return data, nil
}

func (f *productForm) fields() (product.Fields, error) {
	var out product.Fields
	var err error

	out.SKUID = text(f.SKUID)
	out.Name = text(f.Name)
	out.Description = text(f.Description)
	out.DiscountType = text(f.DiscountType)
	out.Status = text(f.Status)

	if out.Price, err = parseMoney("product_price", f.Price); err != nil {
		return out, err
	}
	if out.SalesPrice, err = parseMoney("sales_price", f.SalesPrice); err != nil {
		return out, err
	}
	if out.Discount, err = parseInt("product_discount", f.Discount); err != nil {
		return out, err
	}
	if out.Stock, err = parseInt("product_stock", f.Stock); err != nil {
		return out, err
	}
	if out.Categories, err = parseList("product_categories", f.Categories); err != nil {
		return out, err
	}
	if out.Sizes, err = parseList("product_sizes", f.Sizes); err != nil {
		return out, err
	}
	if out.Colors, err = parseList("product_colors", f.Colors); err != nil {
		return out, err
	}
	return out, nil
}

func (f *productForm) existingImages() ([]string, error) {
	return parseList("existing_images", f.ExistingImages)
}

func (f *profileForm) fields() account.Fields {
	return account.Fields{
		DisplayName: f.DisplayName,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
	}
}

// text treats a blank value as not supplied.
func text(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func parseMoney(field string, s *string) (*money.Money, error) {
	v := text(s)
	if v == nil {
		return nil, nil
	}
	m, err := money.Parse(*v)
	if err != nil {
		return nil, apperr.Validationf("%s must be a number", field)
	}
	return m, nil
}

// parseInt accepts an integer, or a finite decimal within int64 range which it truncates.
func parseInt(field string, s *string) (*int64, error) {
	v := text(s)
	if v == nil {
		return nil, nil
	}
	if n, err := strconv.ParseInt(*v, 10, 64); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, apperr.Validationf("%s must be a number", field)
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, apperr.Validationf("%s must be a number", field)
	}
	n := int64(f)
	return &n, nil
}

func parseList(field string, s *string) ([]string, error) {
	v := text(s)
	if v == nil {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(*v), &list); err != nil {
		return nil, apperr.Validationf("%s must be a JSON array of strings", field)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// flexValue accepts a JSON number or a string holding one.
type flexValue struct {
	raw string
}

func (v *flexValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v.raw = strings.TrimSpace(s)
	return nil
}

func (v flexValue) ptr() *string {
	if v.raw == "" {
		return nil
	}
	return &v.raw
}

func (v flexValue) asMoney(field string) (*money.Money, error) {
	return parseMoney(field, v.ptr())
}

func (v flexValue) asInt(field string) (*int64, error) {
	return parseInt(field, v.ptr())
}

// parseTime accepts RFC 3339 or a bare date.
func parseTime(field string, s *string) (*time.Time, error) {
	v := text(s)
	if v == nil {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, *v); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Validationf("%s must be a date", field)
}

// bindJSON decodes a JSON body. A malformed body is a validation error.
func bindJSON(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}
