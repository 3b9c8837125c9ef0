package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/dto"
	"stayops/internal/app/handlers/calendarapp"
	"stayops/internal/app/queries"
)

type CalendarHandler struct {
	Queries queries.Bus
}

func (h CalendarHandler) Month(c *gin.Context) {
	year, month := monthParams(c)
	query := calendarapp.GetMonthCalendarQuery{
		PropertyID: c.Param("id"),
		Year:       year,
		Month:      month,
	}
	result, err := queries.Ask[calendarapp.GetMonthCalendarQuery, dto.MonthCalendar](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h CalendarHandler) AvailableDates(c *gin.Context) {
	year, month := monthParams(c)
	query := calendarapp.AvailableDatesQuery{
		PropertyID: c.Param("id"),
		Year:       year,
		Month:      month,
	}
	result, err := queries.Ask[calendarapp.AvailableDatesQuery, dto.AvailableDates](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h CalendarHandler) Suggestion(c *gin.Context) {
	year, month := monthParams(c)
	query := calendarapp.SuggestedPriceQuery{
		PropertyID: c.Param("id"),
		Year:       year,
		Month:      month,
	}
	result, err := queries.Ask[calendarapp.SuggestedPriceQuery, dto.PriceSuggestion](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// monthParams reads ?year= and ?month=, defaulting to the current month.
func monthParams(c *gin.Context) (int, time.Month) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()
	if raw := c.Query("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			year = v
		}
	}
	if raw := c.Query("month"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			month = time.Month(v)
		}
	}
	return year, month
}

var _ CalendarHTTP = CalendarHandler{}
