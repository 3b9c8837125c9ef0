package ginserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayops/internal/app/handlers/calendarapp"
	"stayops/internal/domain/calendar"
	"stayops/internal/domain/pricing"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{pricing.ErrConfigNotFound, http.StatusNotFound},
		{pricing.ErrInvalidBaseValues, http.StatusUnprocessableEntity},
		{calendar.ErrInvalidMonth, http.StatusUnprocessableEntity},
		{calendarapp.ErrPropertyIDRequired, http.StatusUnprocessableEntity},
		{pricing.ErrConcurrentUpdate, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("load config: %w", pricing.ErrConfigNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "err=%v", tc.err)
	}
}
