package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "chefviral/internal/application/auth/usecases"
	billingUsecases "chefviral/internal/application/billing/usecases"
	catalogUsecases "chefviral/internal/application/catalog/usecases"
	dashboardUsecases "chefviral/internal/application/dashboard/usecases"
	discoveryUsecases "chefviral/internal/application/discovery/usecases"
	generationUsecases "chefviral/internal/application/generation/usecases"
	menuUsecases "chefviral/internal/application/menu/usecases"
	onboardingUsecases "chefviral/internal/application/onboarding/usecases"
	profileUsecases "chefviral/internal/application/profile/usecases"
	"chefviral/internal/infrastructure/ai"
	"chefviral/internal/infrastructure/auth"
	"chefviral/internal/infrastructure/cache"
	"chefviral/internal/infrastructure/config"
	"chefviral/internal/infrastructure/email"
	"chefviral/internal/infrastructure/ratelimit"
	"chefviral/internal/infrastructure/repository"
	"chefviral/internal/infrastructure/storage"
	"chefviral/internal/interfaces/http/handlers"
	"chefviral/internal/interfaces/http/middleware"
	"chefviral/internal/interfaces/http/routes"
	"chefviral/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine

	authHandler       *handlers.AuthHandler
	onboardingHandler *handlers.OnboardingHandler
	productHandler    *handlers.ProductHandler
	generationHandler *handlers.GenerationHandler
	discoveryHandler  *handlers.DiscoveryHandler
	menuHandler       *handlers.MenuHandler
	dashboardHandler  *handlers.DashboardHandler
	profileHandler    *handlers.ProfileHandler
	planHandler       *handlers.PlanHandler

	authMiddleware   *middleware.AuthMiddleware
	authRateLimiter  *middleware.RateLimiter
	eventRateLimiter *middleware.RateLimiter

	log            logger.Interface
	storagePath    string
	storageURL     string
	allowedOrigins []string
}

// NewRouter builds the full dependency graph.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	profileRepo := repository.NewBusinessProfileRepository(db, log)
	productRepo := repository.NewProductRepository(db, log)
	contentRepo := repository.NewGeneratedContentRepository(db, log)
	analyticsRepo := repository.NewAnalyticsEventRepository(db, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpHours)

	tokenStore := cache.NewLoginTokenStore(rdb, time.Duration(cfg.Auth.LoginTokenTTLMin)*time.Minute)
	limiter := ratelimit.NewRedisLimiter(rdb)
	var statsCache dashboardUsecases.StatsCache
	if rdb != nil {
		statsCache = cache.NewStatsCache(rdb)
	}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
		LinkPath:    cfg.Auth.LoginLinkPath,
	})

	geminiClient := ai.NewGeminiClient(cfg.Gemini, log)

	assetStore, err := storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.PublicURL, cfg.Storage.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	requestLinkUC := authUsecases.NewRequestLoginLinkUseCase(userRepo, tokenStore, emailService, log)
	verifyTokenUC := authUsecases.NewVerifyLoginTokenUseCase(userRepo, profileRepo, tokenStore, jwtSvc, log)

	onboardingUC := onboardingUsecases.NewCompleteOnboardingUseCase(
		profileRepo, profileRepo, cfg.Server.BaseURL, cfg.Billing.TrialDays, log)

	addProductUC := catalogUsecases.NewAddProductUseCase(productRepo, profileRepo, log)
	listProductsUC := catalogUsecases.NewListProductsUseCase(productRepo, profileRepo, log)
	updateProductUC := catalogUsecases.NewUpdateProductUseCase(productRepo, log)
	deleteProductUC := catalogUsecases.NewDeleteProductUseCase(productRepo, log)

	generateUC := generationUsecases.NewGenerateContentUseCase(profileRepo, productRepo, contentRepo, geminiClient, log)
	historyUC := generationUsecases.NewListHistoryUseCase(contentRepo, log)

	searchUC := discoveryUsecases.NewSearchProductsUseCase(productRepo, profileRepo, log)

	getMenuUC := menuUsecases.NewGetPublicMenuUseCase(profileRepo, productRepo, cfg.Server.BaseURL, log)
	trackEventUC := menuUsecases.NewTrackEventUseCase(profileRepo, productRepo, analyticsRepo, log)

	statsUC := dashboardUsecases.NewGetDashboardStatsUseCase(profileRepo, productRepo, contentRepo, analyticsRepo, statsCache, log)

	plansUC := billingUsecases.NewGetPlansUseCase(cfg.Billing)

	getProfileUC := profileUsecases.NewGetProfileUseCase(profileRepo, log)
	updateProfileUC := profileUsecases.NewUpdateProfileUseCase(profileRepo, log)
	uploadBrandingUC := profileUsecases.NewUploadBrandingUseCase(profileRepo, assetStore, log)

	return &Router{
		engine:            engine,
		authHandler:       handlers.NewAuthHandler(requestLinkUC, verifyTokenUC, log),
		onboardingHandler: handlers.NewOnboardingHandler(onboardingUC, log),
		productHandler:    handlers.NewProductHandler(addProductUC, listProductsUC, updateProductUC, deleteProductUC, log),
		generationHandler: handlers.NewGenerationHandler(generateUC, historyUC, log),
		discoveryHandler:  handlers.NewDiscoveryHandler(searchUC, log),
		menuHandler:       handlers.NewMenuHandler(getMenuUC, trackEventUC, log),
		dashboardHandler:  handlers.NewDashboardHandler(statsUC, log),
		profileHandler:    handlers.NewProfileHandler(getProfileUC, updateProfileUC, uploadBrandingUC, log),
		planHandler:       handlers.NewPlanHandler(plansUC),
		authMiddleware:    middleware.NewAuthMiddleware(jwtSvc, log),
		authRateLimiter: middleware.NewRateLimiter(limiter, ratelimit.Config{
			RequestsPerMinute: 10,
			RequestsPerHour:   60,
		}, "auth", log),
		eventRateLimiter: middleware.NewRateLimiter(limiter, ratelimit.Config{
			RequestsPerMinute: 60,
			RequestsPerHour:   600,
		}, "events", log),
		log:            log,
		storagePath:    assetStore.BasePath(),
		storageURL:     cfg.Storage.PublicURL,
		allowedOrigins: cfg.Server.AllowedOrigins,
	}, nil
}

// SetupRoutes attaches middleware and all endpoints to the engine.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded branding assets are served straight from disk when the
	// public URL is a local path.
	if strings.HasPrefix(r.storageURL, "/") {
		r.engine.Static(r.storageURL, r.storagePath)
	}

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.authRateLimiter,
	})

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		MenuHandler:      r.menuHandler,
		DiscoveryHandler: r.discoveryHandler,
		PlanHandler:      r.planHandler,
		EventRateLimiter: r.eventRateLimiter,
	})

	routes.SetupOwnerRoutes(r.engine, &routes.OwnerRouteConfig{
		OnboardingHandler: r.onboardingHandler,
		ProductHandler:    r.productHandler,
		GenerationHandler: r.generationHandler,
		DashboardHandler:  r.dashboardHandler,
		ProfileHandler:    r.profileHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
