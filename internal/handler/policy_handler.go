package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"policydesk/internal/errors"
	"policydesk/internal/model"
	"policydesk/internal/service"
)

// PolicyHandler handles policy record endpoints.
type PolicyHandler struct {
	policyService service.PolicyService
}

// NewPolicyHandler creates a new policy handler.
func NewPolicyHandler(policyService service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// CreatePolicyRequest represents a new policy submission.
type CreatePolicyRequest struct {
	ClientName  string           `json:"clientName" validate:"required"`
	Phone       string           `json:"phone" validate:"required"`
	VehicleNo   string           `json:"vehicleNo" validate:"required"`
	VehicleType string           `json:"vehicleType" validate:"required"`
	PolicyType  model.PolicyType `json:"policyType" validate:"-"`
	StartDate   model.DateOnly   `json:"startDate" validate:"-"`
	EndDate     model.DateOnly   `json:"endDate" validate:"-"`
	Amount      *decimal.Decimal `json:"amount" validate:"-"`
	Discount    decimal.Decimal  `json:"discount" validate:"-"`
}

// UpdatePolicyRequest is a partial update; only present fields change.
type UpdatePolicyRequest struct {
	ClientName  *string           `json:"clientName"`
	Phone       *string           `json:"phone"`
	VehicleNo   *string           `json:"vehicleNo"`
	VehicleType *string           `json:"vehicleType"`
	PolicyType  *model.PolicyType `json:"policyType"`
	StartDate   *model.DateOnly   `json:"startDate"`
	EndDate     *model.DateOnly   `json:"endDate"`
	Amount      *decimal.Decimal  `json:"amount"`
	Discount    *decimal.Decimal  `json:"discount"`
}

// Create godoc
// @Summary Record a sold policy
// @Tags policies
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreatePolicyRequest true "Policy fields"
// @Success 201 {object} model.Policy
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies [post]
func (h *PolicyHandler) Create(c echo.Context) error {
	var req CreatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "startDate and endDate are required",
			Code:  "MISSING_DATES",
		})
	}
	if req.Amount == nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "amount is required",
			Code:  "MISSING_AMOUNT",
		})
	}

	policy, err := h.policyService.Create(c.Request().Context(), service.CreatePolicyInput{
		ClientName:  req.ClientName,
		Phone:       req.Phone,
		VehicleNo:   req.VehicleNo,
		VehicleType: req.VehicleType,
		PolicyType:  req.PolicyType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      *req.Amount,
		Discount:    req.Discount,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, policy)
}

// List godoc
// @Summary List policies, newest first
// @Tags policies
// @Produce json
// @Security TokenAuth
// @Param vehicleNo query string false "Filter by vehicle number substring"
// @Success 200 {array} model.Policy
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies [get]
func (h *PolicyHandler) List(c echo.Context) error {
	policies, err := h.policyService.List(c.Request().Context(), c.QueryParam("vehicleNo"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if policies == nil {
		policies = []model.Policy{}
	}
	return c.JSON(http.StatusOK, policies)
}

// Update godoc
// @Summary Partially update a policy
// @Tags policies
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Policy ID"
// @Param request body UpdatePolicyRequest true "Fields to change"
// @Success 200 {object} model.Policy
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies/{id} [put]
func (h *PolicyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid policy ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	policy, err := h.policyService.Update(c.Request().Context(), id, service.UpdatePolicyInput{
		ClientName:  req.ClientName,
		Phone:       req.Phone,
		VehicleNo:   req.VehicleNo,
		VehicleType: req.VehicleType,
		PolicyType:  req.PolicyType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      req.Amount,
		Discount:    req.Discount,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, policy)
}

// Delete godoc
// @Summary Delete a policy
// @Tags policies
// @Produce json
// @Security TokenAuth
// @Param id path string true "Policy ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies/{id} [delete]
func (h *PolicyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid policy ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.policyService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "policy removed",
	})
}

// ByDate godoc
// @Summary Policies starting or expiring on a date
// @Tags policies
// @Produce json
// @Security TokenAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.DateBuckets
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies/date/{date} [get]
func (h *PolicyHandler) ByDate(c echo.Context) error {
	day, err := model.ParseDate(c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_DATE",
		})
	}

	buckets, err := h.policyService.BucketsForDate(c.Request().Context(), day)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, buckets)
}

// Calendar godoc
// @Summary Month grid with expiry highlight states
// @Tags policies
// @Produce json
// @Security TokenAuth
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} calendar.Month
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies/calendar/{month} [get]
func (h *PolicyHandler) Calendar(c echo.Context) error {
	month, err := time.Parse("2006-01", c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid month: expected YYYY-MM",
			Code:  "INVALID_MONTH",
		})
	}

	grid, err := h.policyService.CalendarMonth(c.Request().Context(), month.Year(), month.Month())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, grid)
}

// Stats godoc
// @Summary Public aggregate statistics
// @Tags policies
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errors.ErrorResponse
// @Router /policies/stats [get]
func (h *PolicyHandler) Stats(c echo.Context) error {
	stats, err := h.policyService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, stats)
}
