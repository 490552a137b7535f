package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

const seedTimeout = 5 * time.Second

// DefaultDishes is the starter catalog inserted into an empty dish collection.
var DefaultDishes = []model.Dish{
	{
		ID:       "dish-tomato-garlic-pasta",
		Name:     "Tomato Garlic Pasta",
		MealType: model.MealTypeDinner,
		IsActive: true,
		Tags:     []string{"pasta"},
		Ingredients: []model.DishIngredient{
			{IngredientID: "ingredient-olive-oil", Name: "Olive Oil", QtyPerServing: decimal.NewFromInt(30), Unit: model.UnitMilliliter},
			{IngredientID: "ingredient-garlic", Name: "Garlic", QtyPerServing: decimal.NewFromInt(2), Unit: model.UnitPiece},
			{IngredientID: "ingredient-tomato", Name: "Tomato", QtyPerServing: decimal.NewFromInt(2), Unit: model.UnitPiece},
		},
	},
}

// initializeDefaultCatalog inserts dishes when the catalog has none.
func initializeDefaultCatalog(repo repository.DishRepositoryInterface, dishes []model.Dish) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, dish := range dishes {
		if _, err := repo.Upsert(ctx, dish); err != nil {
			return err
		}
	}
	log.Info().Int("dishes", len(dishes)).Msg("Seeded default catalog")
	return nil
}
