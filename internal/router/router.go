package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"policydesk/internal/auth"
	"policydesk/internal/config"
	"policydesk/internal/errors"
	"policydesk/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	policyHandler *handler.PolicyHandler,
	inquiryHandler *handler.InquiryHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowHeaders: []string{echo.HeaderContentType, handler.TokenHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/seed", seedHandler.Seed)
	api.GET("/policies/stats", policyHandler.Stats)
	api.GET("/products", inquiryHandler.Products)
	api.POST("/inquiries/:product", inquiryHandler.Submit)

	// Secured routes carry the token in the x-auth-token header.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + handler.TokenHeader,
	}), blacklistCheck(tokenStore))

	secured.GET("/policies", policyHandler.List)
	secured.POST("/policies", policyHandler.Create)
	secured.PUT("/policies/:id", policyHandler.Update)
	secured.DELETE("/policies/:id", policyHandler.Delete)
	secured.GET("/policies/date/:date", policyHandler.ByDate)
	secured.GET("/policies/calendar/:month", policyHandler.Calendar)
}

// blacklistCheck rejects access tokens revoked by logout and attaches the
// authenticated identity to the request context.
func blacklistCheck(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "UNAUTHORIZED",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token claims",
					Code:  "UNAUTHORIZED",
				})
			}

			if jti, _ := claims["jti"].(string); jti != "" {
				blacklisted, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), jti)
				if err == nil && blacklisted {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: "token revoked",
						Code:  "TOKEN_REVOKED",
					})
				}
			}

			if uid, ok := claims["user_id"].(float64); ok {
				c.Set("user_id", uint(uid))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set("user_email", email)
			}

			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
