package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/account/queries/get_profile"
	"github.com/light-bringer/storefront-admin/internal/app/account/usecases/update_profile"
)

func (s *Server) updateProfile(c echo.Context) error {
	var form profileForm
	images, err := readForm(c, &form, "profile_image")
	if err != nil {
		return s.fail(c, err)
	}

	profile, err := s.commands.UpdateProfile.Execute(c.Request().Context(), &update_profile.Request{
		UserID: identity(c).ID,
		Fields: form.fields(),
		Images: images,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

func (s *Server) getProfile(c echo.Context) error {
	profile, err := s.queries.GetProfile.Execute(c.Request().Context(), &get_profile.Request{
		UserID: identity(c).ID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": profile})
}
