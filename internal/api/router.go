package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/config"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/handler"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/middleware"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/repository"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/review"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config, db *sql.DB, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := db.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Itinerary continuity API is running",
		})
	})

	itineraryRepo := repository.NewItineraryRepository(db)
	itineraryService := service.NewItineraryService(itineraryRepo, logger)
	continuityService := service.NewContinuityService(
		itineraryService,
		continuity.NewValidator(cfg.ContinuityOptions()),
		review.New(cfg.ReviewOptions()),
		logger,
	)

	itineraryHandler := handler.NewItineraryHandler(itineraryService)
	continuityHandler := handler.NewContinuityHandler(continuityService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger))
	api.Use(middleware.Auth(cfg.JWTSecret, logger))
	{
		itineraries := api.Group("/itineraries")
		{
			itineraries.POST("", itineraryHandler.Create)
			itineraries.GET("", itineraryHandler.List)
			itineraries.GET("/:id", itineraryHandler.Get)
			itineraries.PUT("/:id/segments", itineraryHandler.ReplaceSegments)
			itineraries.DELETE("/:id", itineraryHandler.Delete)

			itineraries.GET("/:id/gaps", continuityHandler.GetGaps)
			itineraries.GET("/:id/review", continuityHandler.GetReview)
			itineraries.POST("/:id/autofix", continuityHandler.AutoFix)
			itineraries.POST("/:id/fill-gaps", continuityHandler.FillGaps)
		}

		stateless := api.Group("/continuity")
		{
			stateless.POST("/gaps", continuityHandler.AnalyzeGaps)
			stateless.POST("/review", continuityHandler.AnalyzeReview)
			stateless.POST("/autofix", continuityHandler.AnalyzeAutoFix)
		}
	}

	return r
}
