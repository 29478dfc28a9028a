package stubserver

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/config"
)

// NewRouter creates and configures the Gin router over a fresh stub state.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := NewServer(logger)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/register", srv.handleRegister)
	router.POST("/token", srv.handleToken)
	router.GET("/products", srv.handleListProducts)

	authed := router.Group("")
	authed.Use(srv.authMiddleware())
	{
		authed.GET("/me", srv.handleMe)
		authed.POST("/api/orders", srv.handleCreateOrder)
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
