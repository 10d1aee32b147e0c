package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/queries/list_coupons"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/apply_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/create_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/delete_coupon"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

type createCouponBody struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue flexValue `json:"discount_value"`
	MaxUses       flexValue `json:"max_uses"`
	ValidFrom     *string   `json:"valid_from"`
	ValidUntil    *string   `json:"valid_until"`
}

func (b *createCouponBody) input() (domain.Input, error) {
	in := domain.Input{Code: b.Code, DiscountType: b.DiscountType}
	var err error
	if in.DiscountValue, err = b.DiscountValue.asMoney("discount_value"); err != nil {
		return in, err
	}
	if in.MaxUses, err = b.MaxUses.asInt("max_uses"); err != nil {
		return in, err
	}
	if in.ValidFrom, err = parseTime("valid_from", b.ValidFrom); err != nil {
		return in, err
	}
	if in.ValidUntil, err = parseTime("valid_until", b.ValidUntil); err != nil {
		return in, err
	}
	return in, nil
}

func (s *Server) createCoupon(c echo.Context) error {
	var body createCouponBody
	if err := bindJSON(c, &body); err != nil {
		return s.fail(c, err)
	}
	in, err := body.input()
	if err != nil {
		return s.fail(c, err)
	}

	coupon, err := s.commands.CreateCoupon.Execute(c.Request().Context(), &create_coupon.Request{
		UserID: identity(c).ID,
		Input:  in,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Coupon created successfully",
		"coupon":  coupon,
	})
}

func (s *Server) listCoupons(c echo.Context) error {
	coupons, err := s.queries.ListCoupons.Execute(c.Request().Context(), &list_coupons.Request{
		UserID: identity(c).ID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"coupons": coupons})
}

type applyCouponBody struct {
	Code      string    `json:"code"`
	CartTotal flexValue `json:"cart_total"`
}

// applyCoupon reports every rejection as {"valid": false, "message": ...}.
func (s *Server) applyCoupon(c echo.Context) error {
	var body applyCouponBody
	if err := bindJSON(c, &body); err != nil {
		return s.rejectCoupon(c, err)
	}
	total, err := body.CartTotal.asMoney("cart_total")
	if err != nil {
		return s.rejectCoupon(c, err)
	}

	res, err := s.commands.ApplyCoupon.Execute(c.Request().Context(), &apply_coupon.Request{
		UserID:    identity(c).ID,
		Code:      body.Code,
		CartTotal: total,
	})
	if err != nil {
		return s.rejectCoupon(c, err)
	}

	out := map[string]interface{}{
		"valid":          true,
		"code":           res.Code,
		"discount_type":  res.DiscountType,
		"discount_value": res.DiscountValue.Float64(),
		"message":        "Coupon is valid and active",
	}
	if res.Discount != nil {
		out["discount"] = res.Discount.String()
		out["final_total"] = res.FinalTotal.String()
		out["message"] = "Coupon applied successfully"
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) rejectCoupon(c echo.Context, err error) error {
	status, msg := mapError(err)
	s.logFailure(c, status, err)
	if errors.Is(err, apperr.ErrStore) || status == http.StatusInternalServerError {
		return c.JSON(status, map[string]string{"error": msg})
	}
	return c.JSON(status, map[string]interface{}{"valid": false, "message": msg})
}

type deleteCouponBody struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

func (s *Server) deleteCoupon(c echo.Context) error {
	var body deleteCouponBody
	if err := bindJSON(c, &body); err != nil {
		return s.fail(c, err)
	}

	deleted, err := s.commands.DeleteCoupon.Execute(c.Request().Context(), &delete_coupon.Request{
		UserID: identity(c).ID,
		ID:     body.ID,
		Code:   body.Code,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "Coupon deleted successfully",
		"deleted_coupon": deleted,
	})
}
