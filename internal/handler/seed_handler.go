package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"policydesk/internal/config"
	"policydesk/internal/errors"
	"policydesk/internal/service"
)

// SeedHandler recreates the single admin user from configured credentials.
// Provisioning only; not meant for production exposure.
type SeedHandler struct {
	authService service.AuthService
	cfg         *config.Config
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, cfg *config.Config) *SeedHandler {
	return &SeedHandler{authService: authService, cfg: cfg}
}

// Seed godoc
// @Summary Recreate the admin user from configured credentials
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/seed [get]
func (h *SeedHandler) Seed(c echo.Context) error {
	user, err := h.authService.Seed(c.Request().Context(), h.cfg.AdminUsername, h.cfg.AdminEmail, h.cfg.AdminPassword)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to seed admin user",
			Code:  "SEED_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "admin seeded successfully",
		"email":   user.Email,
	})
}
