package generation

import (
	"github.com/guttosm/menu-service/internal/domain/model"
)

// Ranking selects how candidates are ordered before the fill pass.
type Ranking int

const (
	// RankByFridgeOverlap orders candidates by fridge overlap, then name.
	RankByFridgeOverlap Ranking = iota
	// RankShuffle orders candidates uniformly at random.
	RankShuffle
)

// FillInput carries everything the slot filler needs.
type FillInput struct {
	// TotalSlots is the slot budget per meal type. Non-positive counts are ignored.
	TotalSlots model.SlotRequest
	// RequiredDishIDs are placed first, in this order.
	RequiredDishIDs []string
	// Pool holds the candidates per meal type.
	Pool Pool
	// Fridge is used by RankByFridgeOverlap.
	Fridge FridgeIndex
	// Ranking defaults to RankByFridgeOverlap.
	Ranking Ranking
	// Shuffler is used by RankShuffle. A time-seeded source is used when nil.
	Shuffler Shuffler
}

// FillResult is the outcome of FillSlots.
type FillResult struct {
	// Slots lists the assignments: required dishes first, then ranked fills
	// in canonical meal type order.
	Slots []model.FilledSlot
	// Used holds every dish ID assigned during this pass.
	Used map[string]struct{}
}

// FillSlots assigns dishes to slots. Required dishes are placed first when
// their meal type still has budget; unknown required IDs and required dishes
// without budget are skipped. Remaining slots are filled from the ranked pool
// without reusing a dish. Under-filling is returned as is.
func FillSlots(in FillInput) FillResult {
	result := FillResult{
		Slots: []model.FilledSlot{},
		Used:  make(map[string]struct{}),
	}

	remaining := in.TotalSlots.Normalize()
	if len(remaining) == 0 {
		return result
	}

	index := make(map[string]model.Dish)
	for _, mt := range model.MealTypes {
		for _, d := range in.Pool[mt] {
			index[d.ID] = d
		}
	}

	for _, id := range in.RequiredDishIDs {
		dish, ok := index[id]
		if !ok {
			continue
		}
		if _, dup := result.Used[id]; dup {
			continue
		}
		if remaining[dish.MealType] <= 0 {
			continue
		}
		result.Slots = append(result.Slots, model.FilledSlot{MealType: dish.MealType, DishID: id})
		result.Used[id] = struct{}{}
		remaining[dish.MealType]--
	}

	ranked := rankPool(in)

	for _, mt := range model.MealTypes {
		needed := remaining[mt]
		if needed <= 0 {
			continue
		}
		filled := 0
		for _, dish := range ranked[mt] {
			if filled >= needed {
				break
			}
			if _, used := result.Used[dish.ID]; used || dish.MealType != mt {
				continue
			}
			result.Slots = append(result.Slots, model.FilledSlot{MealType: mt, DishID: dish.ID})
			result.Used[dish.ID] = struct{}{}
			filled++
		}
	}

	return result
}

// rankPool orders each meal type's candidates according to in.Ranking.
func rankPool(in FillInput) Pool {
	shuffler := in.Shuffler
	if in.Ranking == RankShuffle && shuffler == nil {
		shuffler = NewTimeSeededShuffler()
	}

	ranked := make(Pool, len(in.Pool))
	for _, mt := range model.MealTypes {
		dishes := in.Pool[mt]
		if len(dishes) == 0 {
			continue
		}
		if in.Ranking == RankShuffle {
			ranked[mt] = shuffleDishes(dishes, shuffler)
		} else {
			ranked[mt] = RankByFridge(dishes, in.Fridge)
		}
	}
	return ranked
}

func shuffleDishes(dishes []model.Dish, s Shuffler) []model.Dish {
	out := make([]model.Dish, len(dishes))
	copy(out, dishes)
	s.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
