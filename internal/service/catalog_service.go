package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service/cache"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

const (
	catalogCacheName = "catalog"
	snapshotKey      = "snapshot"
)

// CatalogService manages dishes and fridge stock and serves the catalog
// snapshots that menu generation runs against.
type CatalogService interface {
	ListDishes(ctx context.Context) ([]model.Dish, error)
	GetDish(ctx context.Context, id string) (*model.Dish, error)
	UpsertDish(ctx context.Context, dish model.Dish) (*model.Dish, error)
	ListFridge(ctx context.Context) ([]model.FridgeEntry, error)
	// UpsertFridgeEntry sets the stock of an ingredient. A zero quantity
	// removes the entry.
	UpsertFridgeEntry(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error)
	Snapshot(ctx context.Context) (Snapshot, error)
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	dishes    repository.DishRepositoryInterface
	fridge    repository.FridgeRepositoryInterface
	snapshots cache.CacheWithMetrics[Snapshot]
	newID     func() string

	// version counts snapshot invalidations. A load only populates the
	// cache when no write landed while it was reading.
	mu      sync.Mutex
	version uint64
}

// NewCatalogService creates a catalog service over the given repositories.
func NewCatalogService(
	dishes repository.DishRepositoryInterface,
	fridge repository.FridgeRepositoryInterface,
	opts ...CatalogOption,
) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		dishes: dishes,
		fridge: fridge,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSnapshotCache keeps the last loaded snapshot for ttl. Dish and fridge
// writes invalidate it.
func WithSnapshotCache(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if ttl > 0 {
			s.snapshots = newTTLCache[Snapshot](catalogCacheName, 1, ttl)
		}
	}
}

// WithIDGenerator replaces the UUID generator used for new fridge entries.
func WithIDGenerator(fn func() string) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Stop releases the snapshot cache.
func (s *CatalogServiceImpl) Stop() {
	if s.snapshots != nil {
		s.snapshots.Stop()
	}
}

func (s *CatalogServiceImpl) ListDishes(ctx context.Context) ([]model.Dish, error) {
	if s.dishes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.dishes.List(ctx)
}

func (s *CatalogServiceImpl) GetDish(ctx context.Context, id string) (*model.Dish, error) {
	if s.dishes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, notFound(msgDishNotFound)
	}
	return dish, nil
}

func (s *CatalogServiceImpl) UpsertDish(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	if s.dishes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	normalized, err := normalizeDish(dish)
	if err != nil {
		return nil, err
	}
	stored, err := s.dishes.Upsert(ctx, normalized)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot()
	return stored, nil
}

func normalizeDish(dish model.Dish) (model.Dish, error) {
	dish.ID = strings.TrimSpace(dish.ID)
	dish.Name = strings.TrimSpace(dish.Name)
	if dish.ID == "" {
		return model.Dish{}, validationError("dish id is required")
	}
	if dish.Name == "" {
		return model.Dish{}, validationError("dish name is required")
	}
	if !dish.MealType.Valid() {
		return model.Dish{}, validationError("unknown meal type %q", dish.MealType)
	}

	tags := make([]string, 0, len(dish.Tags))
	for _, tag := range dish.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	dish.Tags = tags

	seen := make(map[string]struct{}, len(dish.Ingredients))
	ingredients := make([]model.DishIngredient, 0, len(dish.Ingredients))
	for _, ing := range dish.Ingredients {
		ing.IngredientID = strings.TrimSpace(ing.IngredientID)
		if ing.IngredientID == "" {
			return model.Dish{}, validationError("ingredient id is required")
		}
		if _, dup := seen[ing.IngredientID]; dup {
			return model.Dish{}, invalidData("ingredient %q listed twice", ing.IngredientID)
		}
		seen[ing.IngredientID] = struct{}{}
		if !ing.QtyPerServing.IsPositive() {
			return model.Dish{}, validationError("quantity of %q must be positive", ing.IngredientID)
		}
		if ing.Unit != "" && !ing.Unit.Valid() {
			return model.Dish{}, validationError("unknown unit %q", ing.Unit)
		}
		ingredients = append(ingredients, ing)
	}
	dish.Ingredients = ingredients
	return dish, nil
}

func (s *CatalogServiceImpl) ListFridge(ctx context.Context) ([]model.FridgeEntry, error) {
	if s.fridge == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.fridge.List(ctx)
}

func (s *CatalogServiceImpl) UpsertFridgeEntry(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error) {
	if s.fridge == nil {
		return nil, ErrRepositoryNotConfigured
	}

	entry.IngredientID = strings.TrimSpace(entry.IngredientID)
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.IngredientID == "" {
		return nil, validationError("ingredient id is required")
	}
	if entry.Quantity.IsNegative() {
		return nil, validationError("quantity must not be negative")
	}
	if entry.Unit != "" && !entry.Unit.Valid() {
		return nil, validationError("unknown unit %q", entry.Unit)
	}

	existing, err := s.fridge.FindByIngredient(ctx, entry.IngredientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		entry.ID = existing.ID
		if entry.Name == "" {
			entry.Name = existing.Name
		}
		if entry.Unit == "" {
			entry.Unit = existing.Unit
		}
	} else {
		entry.ID = s.newID()
	}

	if entry.Quantity.IsZero() {
		if existing != nil {
			if _, err := s.fridge.DeleteByIngredient(ctx, entry.IngredientID); err != nil {
				return nil, err
			}
			s.invalidateSnapshot()
		}
		return &entry, nil
	}

	stored, err := s.fridge.Upsert(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot()
	return stored, nil
}

// Snapshot returns the current dishes and fridge stock.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context) (Snapshot, error) {
	if s.dishes == nil || s.fridge == nil {
		return Snapshot{}, ErrRepositoryNotConfigured
	}
	if s.snapshots != nil {
		if snap, ok := s.snapshots.Get(snapshotKey); ok {
			return snap, nil
		}
	}
	version := s.snapshotVersion()

	dishes, err := s.dishes.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	fridge, err := s.fridge.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Dishes: dishes, Fridge: fridge}
	s.storeSnapshot(version, snap)
	return snap, nil
}

func (s *CatalogServiceImpl) snapshotVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *CatalogServiceImpl) storeSnapshot(version uint64, snap Snapshot) {
	if s.snapshots == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != version {
		log.Debug().Str("cache", catalogCacheName).Msg("Skipping stale catalog snapshot")
		return
	}
	s.snapshots.Set(snapshotKey, snap)
	m := s.snapshots.Metrics()
	metrics.UpdateCacheMetrics(catalogCacheName, m.Size, m.Capacity)
}

func (s *CatalogServiceImpl) invalidateSnapshot() {
	if s.snapshots == nil {
		return
	}
	s.mu.Lock()
	s.version++
	s.snapshots.Invalidate(snapshotKey)
	s.mu.Unlock()
	log.Debug().Str("cache", catalogCacheName).Msg("Catalog snapshot invalidated")
}
