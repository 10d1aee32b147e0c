package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coupondomain "github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/apply_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/create_coupon"
	messagedomain "github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/delete_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/mark_read"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/usecases/subscribe"
	productcontracts "github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	productdomain "github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/app/product/queries/list_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/delete_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/update_product"
	"github.com/light-bringer/storefront-admin/internal/auth"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/pkg/ratelimit"
	"github.com/light-bringer/storefront-admin/internal/testutil"
)

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

const adminID = "admin-1"

type productLister struct {
	userID string
}

func (l *productLister) ListByUser(_ context.Context, userID string) ([]*productcontracts.ProductDTO, error) {
	l.userID = userID
	return []*productcontracts.ProductDTO{{ID: "p1", UserID: userID, ProductName: "Mug"}}, nil
}

type fixture struct {
	e           *echo.Echo
	applier     *testutil.RecordingApplier
	products    *testutil.ProductRepo
	coupons     *testutil.CouponRepo
	messages    *testutil.MessageRepo
	subscribers *testutil.SubscriberRepo
	lister      *productLister
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	price, err := money.Parse("20")
	require.NoError(t, err)

	f := &fixture{
		applier: testutil.NewRecordingApplier(),
		products: testutil.NewProductRepo(productdomain.Snapshot{
			ID: "p1", UserID: "u1", Name: "Mug", Price: price, Stock: 2,
			Status: productdomain.DefaultStatus, Images: []string{"a.png", "b.png"},
		}),
		coupons: testutil.NewCouponRepo(
			coupondomain.Snapshot{ID: "c1", UserID: "u1", Code: "SAVE10", DiscountType: coupondomain.DiscountPercentage,
				DiscountValue: money.FromInt(10), ValidFrom: now.Add(-time.Hour), IsActive: true},
			coupondomain.Snapshot{ID: "c2", UserID: "u1", Code: "ONCE", DiscountType: coupondomain.DiscountFixed,
				DiscountValue: money.FromInt(15), MaxUses: func() *int64 { n := int64(1); return &n }(), UsesCount: 1,
				ValidFrom: now.Add(-time.Hour), IsActive: true},
		),
		messages: testutil.NewMessageRepo(
			messagedomain.Snapshot{ID: "m1", UserID: "u1", Email: "a@b.co", Message: "hi"},
			messagedomain.Snapshot{ID: "m2", UserID: "u2", Email: "c@d.co", Message: "theirs"},
		),
		subscribers: testutil.NewSubscriberRepo("taken@b.co"),
		lister:      &productLister{},
	}

	ob := testutil.NewRecordingOutbox()
	clk := clock.NewMockClock(now)
	up := testutil.NewFakeUploader()

	commands := Commands{
		CreateProduct:  create_product.NewInteractor(f.products, ob, f.applier, up, clk, 2),
		UpdateProduct:  update_product.NewInteractor(f.products, ob, f.applier, up, clk, 2),
		DeleteProducts: delete_products.NewInteractor(f.products, ob, f.applier, clk),
		CreateCoupon:   create_coupon.NewInteractor(f.coupons, ob, f.applier, clk),
		ApplyCoupon:    apply_coupon.NewInteractor(f.coupons, ob, f.applier, clk),
		MarkRead:       mark_read.NewInteractor(f.messages, ob, f.applier, clk),
		DeleteMessage:  delete_message.NewInteractor(f.messages, ob, f.applier, clk),
		Subscribe:      subscribe.NewInteractor(f.subscribers, ob, f.applier, clk, adminID),
	}
	queries := Queries{
		ListProducts: list_products.NewQuery(f.lister),
	}
	verifier := testutil.StaticVerifier{
		"tok-u1": auth.Identity{ID: "u1"},
	}
	opts.AdminUserID = adminID
	f.e = NewServer(commands, queries, verifier, opts, zerolog.Nop()).Echo()
	return f
}

func (f *fixture) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return f.serve(t, req, token)
}

func (f *fixture) serve(t *testing.T, req *http.Request, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestHealth(t *testing.T) {
	f := newFixture(t, Options{})
	rec, body := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthGate(t *testing.T) {
	f := newFixture(t, Options{})

	t.Run("missing header", func(t *testing.T) {
		rec, body := f.do(t, http.MethodPost, BasePath+"/apply-coupon", "", map[string]string{"code": "SAVE10"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing authorization header", body["error"])
		assert.Zero(t, f.applier.Commits)
		assert.Zero(t, f.coupons.Stored["c1"].UsesCount)
	})

	t.Run("unknown token", func(t *testing.T) {
		rec, body := f.do(t, http.MethodDelete, BasePath+"/products", "nope", map[string][]string{"ids": {"p1"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", body["error"])
		assert.Empty(t, f.products.Deleted)
	})
}

func TestListProducts_UsesAdminKey(t *testing.T) {
	f := newFixture(t, Options{})
	rec, body := f.do(t, http.MethodGet, BasePath+"/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminID, f.lister.userID)
	assert.Len(t, body["products"], 1)
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, Options{RateLimit: ratelimit.NewMemoryStore(1)})

	rec, _ := f.do(t, http.MethodGet, BasePath+"/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body := f.do(t, http.MethodGet, BasePath+"/products", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded", body["error"])
}

func TestApplyCoupon(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec, body := f.do(t, http.MethodPost, BasePath+"/apply-coupon", "tok-u1",
			map[string]interface{}{"code": " save10 ", "cart_total": 100})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["valid"])
		assert.Equal(t, "SAVE10", body["code"])
		assert.Equal(t, "10.00", body["discount"])
		assert.Equal(t, "90.00", body["final_total"])
		assert.Equal(t, "Coupon applied successfully", body["message"])
		assert.EqualValues(t, 1, f.coupons.Stored["c1"].UsesCount)
	})

	t.Run("without cart total", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec, body := f.do(t, http.MethodPost, BasePath+"/apply-coupon", "tok-u1", map[string]string{"code": "SAVE10"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Coupon is valid and active", body["message"])
		assert.NotContains(t, body, "final_total")
	})

	t.Run("usage limit reached", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec, body := f.do(t, http.MethodPost, BasePath+"/apply-coupon", "tok-u1",
			map[string]interface{}{"code": "ONCE", "cart_total": "10"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "Coupon usage limit reached", body["message"])
		assert.EqualValues(t, 1, f.coupons.Stored["c2"].UsesCount)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec, body := f.do(t, http.MethodPost, BasePath+"/apply-coupon", "tok-u1", map[string]string{"code": "NOPE"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid coupon code", body["message"])
	})
}

func TestCreateCoupon_Validation(t *testing.T) {
	f := newFixture(t, Options{})
	rec, body := f.do(t, http.MethodPost, BasePath+"/add-coupon", "tok-u1",
		map[string]interface{}{"code": "X", "discount_type": "bogus", "discount_value": "5"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "discount_type must be 'fixed' or 'percentage'", body["error"])
	assert.Zero(t, f.applier.Commits)
}

func TestSubscribe_Duplicate(t *testing.T) {
	f := newFixture(t, Options{})

	rec, body := f.do(t, http.MethodPost, BasePath+"/addnewsletter", "", map[string]string{"email": "taken@b.co"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already subscribed", body["error"])
	assert.Empty(t, f.subscribers.Inserted)

	rec, body = f.do(t, http.MethodPost, BasePath+"/addnewsletter", "", map[string]string{"email": "new@b.co"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, f.subscribers.Inserted, 1)
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, fileField string, files ...string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for i, content := range files {
		part, err := w.CreateFormFile(fileField, strings.Repeat("f", i+1)+".png")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUpdateProduct_ExistingImages(t *testing.T) {
	f := newFixture(t, Options{})
	req := multipartRequest(t, http.MethodPut, BasePath+"/products/p1",
		map[string]string{"existing_images": `["a.png"]`, "product_stock": "7"},
		"product_images", "new.png")

	rec, body := f.serve(t, req, "tok-u1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Product updated successfully", body["message"])

	product := body["product"].(map[string]interface{})
	assert.Equal(t, []interface{}{"a.png", "https://img.test/products/u1/new.png"}, product["product_images"])
	assert.EqualValues(t, 7, product["product_stock"])
	assert.Equal(t, "Mug", product["product_name"])
}

func TestUpdateProduct_BadImageList(t *testing.T) {
	f := newFixture(t, Options{})
	req := multipartRequest(t, http.MethodPut, BasePath+"/products/p1",
		map[string]string{"existing_images": `not json`}, "product_images")

	rec, body := f.serve(t, req, "tok-u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "existing_images must be a JSON array of strings", body["error"])
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t, Options{})
	req := multipartRequest(t, http.MethodPost, BasePath+"/products/add-product",
		map[string]string{
			"product_name":       "Lamp",
			"product_price":      "49.90",
			"product_categories": `["home","light"]`,
		},
		"product_images", "one.png", "two.png")

	rec, body := f.serve(t, req, "tok-u1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	product := body["product"].(map[string]interface{})
	assert.Equal(t, "Lamp", product["product_name"])
	assert.Equal(t, []interface{}{"home", "light"}, product["product_categories"])
	assert.Len(t, product["product_images"], 2)
	assert.Len(t, f.products.Inserted, 1)
}

func TestDeleteProducts(t *testing.T) {
	f := newFixture(t, Options{})

	rec, body := f.do(t, http.MethodDelete, BasePath+"/products", "tok-u1", map[string][]string{"ids": {"p1", "other"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["deleted"])

	rec, body = f.do(t, http.MethodDelete, BasePath+"/products", "tok-u1", map[string][]string{"ids": {}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No product IDs provided", body["error"])
}

func TestMessageOwnership(t *testing.T) {
	f := newFixture(t, Options{})

	t.Run("foreign mark read", func(t *testing.T) {
		rec, body := f.do(t, http.MethodPut, BasePath+"/read-message", "tok-u1", map[string]string{"messageId": "m2"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Update failed or unauthorized", body["message"])
		assert.False(t, f.messages.Stored["m2"].Read)
	})

	t.Run("foreign delete", func(t *testing.T) {
		rec, body := f.do(t, http.MethodDelete, BasePath+"/delete-message/m2", "tok-u1", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Delete failed or unauthorized", body["message"])
		assert.Contains(t, f.messages.Stored, "m2")
	})

	t.Run("own mark read", func(t *testing.T) {
		rec, body := f.do(t, http.MethodPut, BasePath+"/read-message", "tok-u1", map[string]string{"messageId": "m1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Message marked as read", body["message"])
		assert.True(t, f.messages.Stored["m1"].Read)
	})
}

func TestMapError(t *testing.T) {
	status, msg := mapError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", msg)

	status, msg = mapError(productdomain.ErrProductNotFoundOrUnauthorized)
	assert.Equal(t, http.StatusForbidden, status)
	assert.NotEmpty(t, msg)
}
