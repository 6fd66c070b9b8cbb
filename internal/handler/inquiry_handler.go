package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"policydesk/internal/errors"
	"policydesk/internal/inquiry"
)

// InquiryHandler handles the public product catalog and inquiry composer.
type InquiryHandler struct {
	agent inquiry.Agent
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(agent inquiry.Agent) *InquiryHandler {
	return &InquiryHandler{agent: agent}
}

// InquiryRequest carries the filled form values keyed by field key.
type InquiryRequest struct {
	Values map[string]string `json:"values" validate:"required"`
}

// InquiryResponse is the composed message and messaging deep link.
// Nothing is stored server-side.
type InquiryResponse struct {
	Product string `json:"product"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Products godoc
// @Summary Insurance product catalog with inquiry field sets
// @Tags inquiries
// @Produce json
// @Success 200 {array} inquiry.Product
// @Router /products [get]
func (h *InquiryHandler) Products(c echo.Context) error {
	return c.JSON(http.StatusOK, inquiry.Catalog())
}

// Submit godoc
// @Summary Validate an inquiry and compose its messaging link
// @Tags inquiries
// @Accept json
// @Produce json
// @Param product path string true "Product tag"
// @Param request body InquiryRequest true "Form values"
// @Success 200 {object} InquiryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{product} [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	product, ok := inquiry.ProductByTag(c.Param("product"))
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrUnknownProduct)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := inquiry.Validate(product, req.Values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_INQUIRY",
		})
	}

	message := inquiry.ComposeMessage(product, h.agent, req.Values)
	return c.JSON(http.StatusOK, InquiryResponse{
		Product: product.Name,
		Message: message,
		Link:    inquiry.DeepLink(h.agent, message),
	})
}
