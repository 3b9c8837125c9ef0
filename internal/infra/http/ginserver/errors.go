package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/handlers/calendarapp"
	"stayops/internal/app/handlers/pricingapp"
	"stayops/internal/domain/calendar"
	"stayops/internal/domain/pricing"
	"stayops/internal/infra/obs"
)

func respondError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if id := obs.RequestIDFromContext(c.Request.Context()); id != "" {
		body["request_id"] = id
	}
	c.JSON(statusFor(err), body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pricing.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrInvalidBaseValues),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendarapp.ErrPropertyIDRequired),
		errors.Is(err, pricingapp.ErrPropertyIDRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pricing.ErrConcurrentUpdate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
