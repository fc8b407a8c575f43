package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/store"
)

// validationErrors are caller mistakes caught before any upstream call
var validationErrors = []error{
	store.ErrInvalidQuantity,
	store.ErrEmptyCart,
	store.ErrMissingMenuItem,
	store.ErrMissingCredentials,
	order.ErrAddressRequired,
	order.ErrInvalidPaymentMethod,
	booking.ErrNameRequired,
	booking.ErrPhoneRequired,
	booking.ErrInvalidGuests,
	booking.ErrDateRequired,
	booking.ErrTimeRequired,
	booking.ErrInvalidDate,
	booking.ErrInvalidTimeFmt,
}

// statusFor maps store and domain errors to gateway status codes
func statusFor(err error) int {
	var rejected *store.RejectedError
	var transient *store.TransientError

	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity
	case errors.As(err, &transient):
		return http.StatusBadGateway
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...} with its mapped status
func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	msg := err.Error()
	var rejected *store.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		// The API's own wording is what the shopper should see.
		msg = rejected.Message
	}
	if status == http.StatusBadGateway {
		msg = "The storefront is unreachable, please try again"
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"error": msg})
}

// bindJSON decodes the request body, answering 400 on failure
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return false
	}
	return true
}

// queryPage reads ?page=, defaulting to 1
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
