package routes

import (
	"github.com/gin-gonic/gin"

	"chefviral/internal/interfaces/http/handlers"
	"chefviral/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures the passwordless login endpoints. Both are
// public; the per-IP limiter sits in front of the per-account limit the
// token store enforces.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	auth.Use(cfg.RateLimiter.Limit())
	{
		auth.POST("/login-link", cfg.AuthHandler.RequestLoginLink)
		auth.POST("/verify", cfg.AuthHandler.VerifyLoginToken)
	}
}
