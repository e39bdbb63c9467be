package routes

import (
	"github.com/gin-gonic/gin"

	"chefviral/internal/interfaces/http/handlers"
	"chefviral/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the unauthenticated surface.
type PublicRouteConfig struct {
	MenuHandler      *handlers.MenuHandler
	DiscoveryHandler *handlers.DiscoveryHandler
	PlanHandler      *handlers.PlanHandler
	EventRateLimiter *middleware.RateLimiter
}

// SetupPublicRoutes configures the visitor-facing endpoints: the menu
// page data, event tracking, discovery search and the plan catalog.
// Only the event write is throttled; menu reads stay cheap.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	menu := engine.Group("/m")
	{
		menu.GET("/:slug", cfg.MenuHandler.GetMenu)
		menu.POST("/:slug/events", cfg.EventRateLimiter.Limit(), cfg.MenuHandler.TrackEvent)
	}

	engine.GET("/discovery/search", cfg.DiscoveryHandler.Search)
	engine.GET("/plans", cfg.PlanHandler.GetPlans)
}
