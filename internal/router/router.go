package router

import (
	"time"

	"coffeeshop/internal/diag"
	"coffeeshop/internal/product"
	"coffeeshop/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and all routes registered.
// The surface is unauthenticated by design.
func NewRouter(
	productHandler *product.Handler,
	settingsHandler *settings.Handler,
	diagHandler *diag.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Coffee Shop Backend Running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Diagnostics
	r.GET("/test", diagHandler.Status)

	api := r.Group("/api")
	{
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Update)

		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.DELETE("/products/:id", productHandler.Delete)
	}

	return r
}
