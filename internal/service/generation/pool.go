// Package generation contains the pure menu generation algorithms: building
// candidate pools, scoring dishes against fridge stock, filling slots and
// aggregating the shopping list. Nothing in this package performs I/O or
// returns errors; feasibility checks belong to the caller.
package generation

import (
	"strings"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// Pool holds the candidate dishes for each meal type.
type Pool map[model.MealType][]model.Dish

// BuildPool filters dishes down to the candidates for one meal type.
// An empty tag filter means no tag restriction. The result keeps catalog order.
func BuildPool(dishes []model.Dish, mealType model.MealType, tags []string, activeOnly bool) []model.Dish {
	tagSet := normalizeTags(tags)

	pool := make([]model.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if dish.MealType != mealType {
			continue
		}
		if activeOnly && !dish.IsActive {
			continue
		}
		if tagSet != nil && !dish.HasAnyTag(tagSet) {
			continue
		}
		pool = append(pool, dish)
	}
	return pool
}

// normalizeTags lowercases the filter. It returns nil when nothing remains.
func normalizeTags(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if t := strings.ToLower(strings.TrimSpace(tag)); t != "" {
			set[t] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
