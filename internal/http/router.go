package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/middleware"
	"github.com/guttosm/menu-service/internal/service"
)

// infraPaths are not request-logged.
var infraPaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	// GenerateRateLimit is the per-client budget for generate and regenerate
	// within RateWindow. Zero disables the extra limit.
	GenerateRateLimit int
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	// IdempotencyStore enables Idempotency-Key handling on /api when set.
	IdempotencyStore middleware.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// Services bundles the services the API routes are served from.
type Services struct {
	Menus         service.MenuService
	Catalog       service.CatalogService
	ShoppingLists service.ShoppingListService
}

// NewRouter creates and configures the Gin router for the menu service.
func NewRouter(services Services, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range apiRouteGroups(services, &cfg) {
		group.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(infraPaths...),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.IdempotencyStore != nil {
		idempotencyCfg := middleware.DefaultIdempotencyConfig(cfg.IdempotencyStore)
		if cfg.IdempotencyTTL > 0 {
			idempotencyCfg.TTL = cfg.IdempotencyTTL
		}
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}

// apiRouteGroups builds the route groups for the configured services.
func apiRouteGroups(services Services, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup

	if services.Menus != nil {
		var generate []gin.HandlerFunc
		if cfg.GenerateRateLimit > 0 {
			limiter := middleware.NewRateLimiter(cfg.GenerateRateLimit, cfg.RateWindow)
			generate = append(generate, limiter.RateLimitScoped("generate"))
		}
		groups = append(groups, NewMenuRoutes(NewMenuHandler(services.Menus), generate...))
	}
	if services.Catalog != nil {
		groups = append(groups, NewCatalogRoutes(NewCatalogHandler(services.Catalog)))
	}
	if services.ShoppingLists != nil {
		groups = append(groups, NewShoppingListRoutes(NewShoppingListHandler(services.ShoppingLists)))
	}

	return groups
}
