package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/checkout"
	"golang-storefront-gateway/internal/clients"
	"golang-storefront-gateway/internal/services"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Retryable marks failures that a manual retry can resolve.
	Retryable bool `json:"retryable,omitempty"`
}

// respondServiceError maps the closed error taxonomy to HTTP statuses.
// Upstream failures never surface their raw shapes; the kind decides.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Cart is empty"})
		return
	case errors.Is(err, services.ErrNoActiveCheckout):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No active checkout"})
		return
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, checkout.ErrMissingFields),
		errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, checkout.ErrUnknownMethod):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, checkout.ErrSubmissionInFlight),
		errors.Is(err, checkout.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case clients.KindValidation:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apiErr.Message})
		case clients.KindAuth:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apiErr.Message})
		case clients.KindNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: apiErr.Message})
		default:
			// Network and server failures are retryable from the user's side.
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:     "Upstream service unavailable",
				Message:   apiErr.Message,
				Retryable: true,
			})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal error",
		Message: err.Error(),
	})
}
