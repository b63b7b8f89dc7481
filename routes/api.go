package routes

import (
	"github.com/address-query/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, queryController *controllers.QueryController) {
	// API v1 group
	v1 := router.Group("/v1")
	{
		queries := v1.Group("/queries")
		{
			queries.POST("/address", queryController.CompileAddressQuery)
		}

		v1.GET("/health", queryController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, queryController *controllers.QueryController) {
	router.GET("/health", queryController.HealthCheck)
	router.GET("/ready", queryController.HealthCheck)
	router.GET("/live", queryController.HealthCheck)
}

// SetupAllRoutes thiết lập tất cả routes
func SetupAllRoutes(router *gin.Engine, queryController *controllers.QueryController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, queryController)
	SetupAPIRoutes(router, queryController)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware thiết lập middleware cho router
func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
