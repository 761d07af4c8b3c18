package routes

import (
	"net/http"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP API for the configured variant. With
// auth enabled the account routes exist and job routes are token-gated;
// with auth disabled only the open job routes are served.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	appHandlers *handlers.AppHandlers,
	requireAuth gin.HandlerFunc,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		if cfg.Auth.Enabled {
			appHandlers.AuthHandler.RegisterRoutes(api)
			appHandlers.UserHandler.RegisterRoutes(api, requireAuth)
			appHandlers.JobHandler.RegisterRoutes(api, requireAuth)
		} else {
			appHandlers.JobHandler.RegisterRoutes(api, nil)
		}
	}
}
