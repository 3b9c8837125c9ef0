package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	"stayops/internal/app/handlers/pricingapp"
	"stayops/internal/app/queries"
)

type PricingHandler struct {
	Queries  queries.Bus
	Commands commands.Bus
}

func (h PricingHandler) Get(c *gin.Context) {
	query := pricingapp.GetConfigQuery{PropertyID: c.Param("id")}
	result, err := queries.Ask[pricingapp.GetConfigQuery, dto.PricingConfig](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PricingHandler) Update(c *gin.Context) {
	var body dto.PricingConfig
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := pricingapp.UpdateConfigCommand{PropertyID: c.Param("id"), Config: body}
	result, err := commands.Dispatch[pricingapp.UpdateConfigCommand, dto.PricingConfig](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PricingHandler) RunAdjustments(c *gin.Context) {
	cmd := pricingapp.ApplyAdjustmentsCommand{Now: time.Now().UTC()}
	result, err := commands.Dispatch[pricingapp.ApplyAdjustmentsCommand, dto.AdjustmentRun](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ PricingHTTP = PricingHandler{}
