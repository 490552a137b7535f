package generation

import (
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

func qty(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func ing(id string, q int64, unit model.Unit) model.DishIngredient {
	return model.DishIngredient{IngredientID: id, QtyPerServing: qty(q), Unit: unit}
}

func dish(id, name string, mt model.MealType, active bool, ings ...model.DishIngredient) model.Dish {
	return model.Dish{ID: id, Name: name, MealType: mt, IsActive: active, Ingredients: ings}
}

func fridgeEntry(id string, q int64, unit model.Unit) model.FridgeEntry {
	return model.FridgeEntry{IngredientID: id, Quantity: qty(q), Unit: unit}
}

func dishIDs(dishes []model.Dish) []string {
	ids := make([]string, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
	}
	return ids
}

func slotIDs(slots []model.FilledSlot) []string {
	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.DishID
	}
	return ids
}
