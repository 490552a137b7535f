package generation

import (
	"testing"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildPool(t *testing.T) {
	soup := dish("d1", "Soup", model.MealTypeLunch, true)
	soup.Tags = []string{"Soup", "salty"}
	salad := dish("d2", "Salad", model.MealTypeLunch, true)
	salad.Tags = []string{"salad"}
	oldSoup := dish("d3", "Old soup", model.MealTypeLunch, false)
	oldSoup.Tags = []string{"soup"}
	steak := dish("d4", "Steak", model.MealTypeDinner, true)
	steak.Tags = []string{"meat"}

	catalog := []model.Dish{soup, salad, oldSoup, steak}

	tests := []struct {
		name       string
		mealType   model.MealType
		tags       []string
		activeOnly bool
		expected   []string
	}{
		{
			name:       "filters by meal type and activity",
			mealType:   model.MealTypeLunch,
			activeOnly: true,
			expected:   []string{"d1", "d2"},
		},
		{
			name:       "keeps inactive dishes when activeOnly is false",
			mealType:   model.MealTypeLunch,
			activeOnly: false,
			expected:   []string{"d1", "d2", "d3"},
		},
		{
			name:       "tag filter is case-insensitive",
			mealType:   model.MealTypeLunch,
			tags:       []string{"SOUP"},
			activeOnly: true,
			expected:   []string{"d1"},
		},
		{
			name:       "any shared tag is enough",
			mealType:   model.MealTypeLunch,
			tags:       []string{"salad", "salty"},
			activeOnly: true,
			expected:   []string{"d1", "d2"},
		},
		{
			name:       "blank tags mean no restriction",
			mealType:   model.MealTypeLunch,
			tags:       []string{" ", ""},
			activeOnly: true,
			expected:   []string{"d1", "d2"},
		},
		{
			name:       "no dish matches",
			mealType:   model.MealTypeBreakfast,
			activeOnly: true,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := BuildPool(catalog, tt.mealType, tt.tags, tt.activeOnly)
			assert.Equal(t, tt.expected, dishIDs(pool))
			for _, d := range pool {
				assert.Equal(t, tt.mealType, d.MealType)
			}
		})
	}
}
