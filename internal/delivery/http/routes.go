package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecocart/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("/search", handler.SearchProducts)
			products.GET("/details/:id", handler.ProductDetails)
		}

		api.POST("/analyze", handler.AnalyzeImage)
	}

	return router
}
