// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/circuitbreaker"
	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/repository"
)

const (
	backendMongoDB = "mongodb"
	backendMemory  = "memory"
)

// DatabaseComponents holds the repositories the services are built on.
type DatabaseComponents struct {
	Backend       string
	DB            *repository.MongoDB
	Dishes        repository.DishRepositoryInterface
	Fridge        repository.FridgeRepositoryInterface
	Menus         repository.MenuRepositoryInterface
	ShoppingLists repository.ShoppingListRepositoryInterface
	// CircuitBreakers is keyed by breaker name. Empty for the memory backend.
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wraps each repository in its own
// circuit breaker. When MongoDB is disabled or unreachable the in-memory
// repositories are used instead. An empty catalog is seeded when
// cfg.SeedCatalog is set.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	components := connectDatabase(cfg)

	if cfg.SeedCatalog {
		if err := initializeDefaultCatalog(components.Dishes, DefaultDishes); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default catalog")
		}
	}

	return components
}

func connectDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled - using in-memory repositories")
		return newMemoryComponents()
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory repositories")
		return newMemoryComponents()
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	breakers := map[string]*circuitbreaker.CircuitBreaker{
		"mongodb-dishes":         newBreaker(cfg, "mongodb-dishes"),
		"mongodb-fridge":         newBreaker(cfg, "mongodb-fridge"),
		"mongodb-menus":          newBreaker(cfg, "mongodb-menus"),
		"mongodb-shopping-lists": newBreaker(cfg, "mongodb-shopping-lists"),
	}

	return &DatabaseComponents{
		Backend: backendMongoDB,
		DB:      db,
		Dishes: repository.NewDishRepositoryWithCircuitBreaker(
			repository.NewDishRepository(db), breakers["mongodb-dishes"]),
		Fridge: repository.NewFridgeRepositoryWithCircuitBreaker(
			repository.NewFridgeRepository(db), breakers["mongodb-fridge"]),
		Menus: repository.NewMenuRepositoryWithCircuitBreaker(
			repository.NewMenuRepository(db), breakers["mongodb-menus"]),
		ShoppingLists: repository.NewShoppingListRepositoryWithCircuitBreaker(
			repository.NewShoppingListRepository(db), breakers["mongodb-shopping-lists"]),
		CircuitBreakers: breakers,
	}
}

func newMemoryComponents() *DatabaseComponents {
	return &DatabaseComponents{
		Backend:         backendMemory,
		Dishes:          repository.NewMemoryDishRepository(),
		Fridge:          repository.NewMemoryFridgeRepository(),
		Menus:           repository.NewMemoryMenuRepository(),
		ShoppingLists:   repository.NewMemoryShoppingListRepository(),
		CircuitBreakers: map[string]*circuitbreaker.CircuitBreaker{},
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    recordBreakerTransition,
	})
	metrics.RecordCircuitBreakerState(name, int(cb.State()))
	return cb
}

func recordBreakerTransition(name string, from, to circuitbreaker.State) {
	metrics.RecordCircuitBreakerState(name, int(to))
	log.Warn().
		Str("circuit_breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// Close disconnects from MongoDB when connected.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
