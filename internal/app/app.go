// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/http"
)

// Application is the wired HTTP router plus the resources that must be
// released on shutdown.
type Application struct {
	Router *gin.Engine

	closers []func()
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	// Logger first, every other component logs during startup.
	InitializeLogger(cfg.Server)

	dbComponents := InitializeDatabase(cfg.Database)
	idempotency := InitializeIdempotency(cfg.Redis)
	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(dbComponents, idempotency, cfg)

	router := http.NewRouter(serviceComponents.HTTPServices(), routerComponents.HealthHandler, routerComponents.Config)

	return &Application{
		Router:  router,
		closers: []func(){serviceComponents.Stop, idempotency.Close, dbComponents.Close},
	}
}

// Close releases caches and connections in reverse start order.
func (a *Application) Close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
}
