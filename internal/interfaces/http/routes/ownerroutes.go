package routes

import (
	"github.com/gin-gonic/gin"

	"chefviral/internal/interfaces/http/handlers"
	"chefviral/internal/interfaces/http/middleware"
)

// OwnerRouteConfig holds dependencies for the authenticated owner surface.
type OwnerRouteConfig struct {
	OnboardingHandler *handlers.OnboardingHandler
	ProductHandler    *handlers.ProductHandler
	GenerationHandler *handlers.GenerationHandler
	DashboardHandler  *handlers.DashboardHandler
	ProfileHandler    *handlers.ProfileHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupOwnerRoutes configures everything behind the session token.
func SetupOwnerRoutes(engine *gin.Engine, cfg *OwnerRouteConfig) {
	authed := engine.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	{
		authed.POST("/onboarding", cfg.OnboardingHandler.Complete)

		authed.POST("/products", cfg.ProductHandler.Add)
		authed.GET("/products", cfg.ProductHandler.List)
		authed.PUT("/products/:sid", cfg.ProductHandler.Update)
		authed.DELETE("/products/:sid", cfg.ProductHandler.Delete)

		authed.POST("/generate", cfg.GenerationHandler.Generate)
		authed.GET("/content/history", cfg.GenerationHandler.History)

		authed.GET("/dashboard/stats", cfg.DashboardHandler.Stats)

		authed.GET("/profile", cfg.ProfileHandler.Get)
		authed.PUT("/profile", cfg.ProfileHandler.Update)
		authed.POST("/profile/branding/:slot", cfg.ProfileHandler.UploadBranding)
	}
}
