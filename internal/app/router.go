// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/http"
)

const readinessTimeout = 2 * time.Second

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health checks and router configuration.
func InitializeRouter(db *DatabaseComponents, idempotency *IdempotencyComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db != nil {
		for name, cb := range db.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
		if db.DB != nil {
			mongo := db.DB
			healthHandler.RegisterChecker(backendMongoDB, http.HealthCheckFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), readinessTimeout)
				defer cancel()
				return mongo.HealthCheck(ctx)
			}))
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		GenerateRateLimit: cfg.Server.GenerateRateLimit,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		IdempotencyTTL:    cfg.Cache.IdempotencyTTL,
	}

	if idempotency != nil {
		routerCfg.IdempotencyStore = idempotency.Store
		if idempotency.Redis != nil {
			healthHandler.RegisterChecker("redis", http.HealthCheckFunc(idempotency.Ping))
		}
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
