package generation

import (
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// DishIngredientLookup maps dish IDs to their per-serving ingredient needs.
type DishIngredientLookup map[string][]model.DishIngredient

// NewDishIngredientLookup builds the lookup from a dish catalog.
func NewDishIngredientLookup(dishes []model.Dish) DishIngredientLookup {
	lookup := make(DishIngredientLookup, len(dishes))
	for _, d := range dishes {
		lookup[d.ID] = d.Ingredients
	}
	return lookup
}

// UnitMismatch describes an ingredient whose dish unit differs from the unit
// of its fridge entry. Quantities are never converted between units.
type UnitMismatch struct {
	IngredientID string
	DishUnit     model.Unit
	FridgeUnit   model.Unit
}

// ShoppingOption configures CalculateShoppingList.
type ShoppingOption func(*shoppingConfig)

type shoppingConfig struct {
	onUnitMismatch func(UnitMismatch)
}

// WithUnitMismatchHandler registers fn to be called once per ingredient whose
// dish and fridge units disagree.
func WithUnitMismatchHandler(fn func(UnitMismatch)) ShoppingOption {
	return func(c *shoppingConfig) {
		c.onUnitMismatch = fn
	}
}

type requirement struct {
	ingredientID string
	quantity     decimal.Decimal
	unit         model.Unit
}

// CalculateShoppingList sums the per-serving needs of the chosen dishes,
// subtracts what the fridge holds and returns only positive remainders, in
// order of first encounter. Inputs are never modified.
func CalculateShoppingList(
	chosenDishIDs []string,
	lookup DishIngredientLookup,
	fridge []model.FridgeEntry,
	opts ...ShoppingOption,
) []model.ShoppingListLine {
	cfg := shoppingConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	order := make([]string, 0)
	totals := make(map[string]*requirement)

	for _, dishID := range chosenDishIDs {
		for _, ing := range lookup[dishID] {
			req, ok := totals[ing.IngredientID]
			if !ok {
				req = &requirement{ingredientID: ing.IngredientID, quantity: decimal.Zero}
				totals[ing.IngredientID] = req
				order = append(order, ing.IngredientID)
			}
			req.quantity = req.quantity.Add(ing.QtyPerServing)
			if req.unit == "" {
				req.unit = ing.Unit
			}
		}
	}

	stock := make(map[string]model.FridgeEntry, len(fridge))
	for _, e := range fridge {
		stock[e.IngredientID] = e
	}

	lines := make([]model.ShoppingListLine, 0, len(order))
	for _, id := range order {
		req := totals[id]
		unit := req.unit
		available := decimal.Zero

		if entry, ok := stock[id]; ok {
			if entry.Quantity.IsPositive() {
				available = entry.Quantity
			}
			if unit == "" {
				unit = entry.Unit
			} else if entry.Unit != "" && entry.Unit != unit && cfg.onUnitMismatch != nil {
				cfg.onUnitMismatch(UnitMismatch{IngredientID: id, DishUnit: unit, FridgeUnit: entry.Unit})
			}
		}

		needed := req.quantity.Sub(available)
		if !needed.IsPositive() {
			continue
		}
		lines = append(lines, model.ShoppingListLine{
			IngredientID: id,
			Quantity:     needed,
			Unit:         unit,
		})
	}

	return lines
}
