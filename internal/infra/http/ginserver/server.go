package ginserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayops/internal/infra/config"
	"stayops/internal/infra/obs"
)

type CalendarHTTP interface {
	Month(c *gin.Context)
	AvailableDates(c *gin.Context)
	Suggestion(c *gin.Context)
}

type PricingHTTP interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
	RunAdjustments(c *gin.Context)
}

type Handlers struct {
	Calendar CalendarHTTP
	Pricing  PricingHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Calendar != nil {
		api.GET("/properties/:id/calendar", h.Calendar.Month)
		api.GET("/properties/:id/calendar/available", h.Calendar.AvailableDates)
		api.GET("/properties/:id/pricing/suggestion", h.Calendar.Suggestion)
	}
	if h.Pricing != nil {
		api.GET("/properties/:id/pricing", h.Pricing.Get)
		api.PUT("/properties/:id/pricing", h.Pricing.Update)
		api.POST("/adjustments/run", h.Pricing.RunAdjustments)
	}

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func configureGinMode(env string) string {
	switch env {
	case "dev", "local":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Mode()
}
