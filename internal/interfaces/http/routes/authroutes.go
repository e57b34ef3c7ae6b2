package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	// LoginRateLimit is nil when redis is not configured; login then runs unthrottled.
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)

		if cfg.LoginRateLimit != nil {
			auth.POST("/login", cfg.LoginRateLimit, cfg.AuthHandler.Login)
		} else {
			auth.POST("/login", cfg.AuthHandler.Login)
		}
	}
}
