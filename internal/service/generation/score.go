package generation

import (
	"sort"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// FridgeIndex maps ingredient IDs to the quantity available in the fridge.
type FridgeIndex map[string]decimal.Decimal

// NewFridgeIndex indexes fridge entries by ingredient ID.
func NewFridgeIndex(entries []model.FridgeEntry) FridgeIndex {
	idx := make(FridgeIndex, len(entries))
	for _, e := range entries {
		idx[e.IngredientID] = e.Quantity
	}
	return idx
}

// ScoreByFridgeOverlap measures how much of the dish's per-serving needs are
// already on hand. Ingredients missing from the fridge contribute nothing.
func ScoreByFridgeOverlap(dish model.Dish, fridge FridgeIndex) decimal.Decimal {
	score := decimal.Zero
	for _, ing := range dish.Ingredients {
		available, ok := fridge[ing.IngredientID]
		if !ok || !available.IsPositive() {
			continue
		}
		score = score.Add(decimal.Min(available, ing.QtyPerServing))
	}
	return score
}

type scoredDish struct {
	dish  model.Dish
	score decimal.Decimal
}

// RankByFridge returns a copy of dishes ordered by fridge overlap descending,
// ties broken by name ascending.
func RankByFridge(dishes []model.Dish, fridge FridgeIndex) []model.Dish {
	scored := make([]scoredDish, len(dishes))
	for i, d := range dishes {
		scored[i] = scoredDish{dish: d, score: ScoreByFridgeOverlap(d, fridge)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if c := scored[i].score.Cmp(scored[j].score); c != 0 {
			return c > 0
		}
		return scored[i].dish.Name < scored[j].dish.Name
	})

	ranked := make([]model.Dish, len(scored))
	for i, s := range scored {
		ranked[i] = s.dish
	}
	return ranked
}
