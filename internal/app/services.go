// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/http"
	"github.com/guttosm/menu-service/internal/service"
	"github.com/guttosm/menu-service/internal/service/generation"
)

const rankingShuffle = "shuffle"

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog       *service.CatalogServiceImpl
	Generator     *service.MenuGeneratorImpl
	Menus         *service.MenuServiceImpl
	ShoppingLists *service.ShoppingListServiceImpl
}

// InitializeServices builds the business services over the repositories.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	catalog := service.NewCatalogService(db.Dishes, db.Fridge,
		service.WithSnapshotCache(cfg.Cache.CatalogTTL))

	generator := service.NewMenuGenerator(generatorOptions(cfg.Generation)...)

	menus := service.NewMenuService(db.Menus, db.ShoppingLists, catalog, generator,
		service.WithMenuCache(cfg.Cache.Size, cfg.Cache.TTL))

	lists := service.NewShoppingListService(db.ShoppingLists, catalog,
		service.WithListChangeHook(menus.Invalidate))

	return &ServiceComponents{
		Catalog:       catalog,
		Generator:     generator,
		Menus:         menus,
		ShoppingLists: lists,
	}
}

// generatorOptions maps GENERATION_RANKING and GENERATION_SEED onto the
// generator. Unknown rankings fall back to fridge overlap.
func generatorOptions(cfg config.GenerationConfig) []service.GeneratorOption {
	switch cfg.Ranking {
	case rankingShuffle:
		opts := []service.GeneratorOption{service.WithRanking(generation.RankShuffle)}
		if cfg.Seed != 0 {
			opts = append(opts, service.WithShuffler(generation.NewRandShuffler(cfg.Seed)))
		}
		return opts
	case "", "fridge":
		return nil
	default:
		log.Warn().Str("ranking", cfg.Ranking).Msg("Unknown generation ranking - using fridge overlap")
		return nil
	}
}

// HTTPServices exposes the services to the router.
func (s *ServiceComponents) HTTPServices() http.Services {
	return http.Services{
		Menus:         s.Menus,
		Catalog:       s.Catalog,
		ShoppingLists: s.ShoppingLists,
	}
}

// Stop releases the service caches.
func (s *ServiceComponents) Stop() {
	s.Menus.Stop()
	s.Catalog.Stop()
}
