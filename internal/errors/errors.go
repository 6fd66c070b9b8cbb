package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPolicyNotFound is returned when a policy id does not exist.
	ErrPolicyNotFound = errors.New("policy not found")
	// ErrInvalidDateRange is returned when endDate is not after startDate.
	ErrInvalidDateRange = errors.New("endDate must be after startDate")
	// ErrInvalidAmount is returned when amount or discount is negative.
	ErrInvalidAmount = errors.New("amount and discount must be non-negative")
	// ErrInvalidPolicyType is returned for an unknown policy type.
	ErrInvalidPolicyType = errors.New("policyType must be 1st Party or 3rd Party")
	// ErrUnknownProduct is returned when an inquiry names a product not in the catalog.
	ErrUnknownProduct = errors.New("unknown insurance product")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrPolicyNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POLICY_NOT_FOUND")
	case ErrInvalidDateRange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case ErrInvalidPolicyType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_POLICY_TYPE")
	case ErrUnknownProduct:
		return NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_PRODUCT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
