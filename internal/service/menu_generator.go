package service

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service/generation"
)

// Snapshot is the catalog state a generation runs against.
type Snapshot struct {
	Dishes []model.Dish
	Fridge []model.FridgeEntry
}

// GenerationRequest describes the menu to produce.
type GenerationRequest struct {
	Name                string
	TotalSlots          model.SlotRequest
	IncludeTags         []string
	RequiredDishes      []string
	RequiredIngredients []string
}

// Selection is the outcome of a generation or regeneration.
type Selection struct {
	// Slots are the newly chosen assignments.
	Slots []model.FilledSlot
	// Locked are existing items kept verbatim (regeneration only).
	Locked []model.MenuItem
	// Replaced are existing unlocked items the new slots supersede.
	Replaced []model.MenuItem
	// ShoppingList covers Locked plus Slots.
	ShoppingList []model.ShoppingListLine
}

// DishIDs returns the dish IDs of locked items followed by the new slots.
func (s *Selection) DishIDs() []string {
	ids := make([]string, 0, len(s.Locked)+len(s.Slots))
	for _, item := range s.Locked {
		ids = append(ids, item.DishID)
	}
	for _, slot := range s.Slots {
		ids = append(ids, slot.DishID)
	}
	return ids
}

// MenuGenerator picks dishes for a menu and computes its shopping list.
// It performs no I/O; callers supply the catalog snapshot.
type MenuGenerator interface {
	Generate(snapshot Snapshot, req GenerationRequest) (*Selection, error)
	Regenerate(snapshot Snapshot, req GenerationRequest, existing []model.MenuItem) (*Selection, error)
}

// GeneratorOption configures a MenuGeneratorImpl.
type GeneratorOption func(*MenuGeneratorImpl)

// MenuGeneratorImpl implements MenuGenerator.
type MenuGeneratorImpl struct {
	ranking        generation.Ranking
	shuffler       generation.Shuffler
	onUnitMismatch func(generation.UnitMismatch)
}

// NewMenuGenerator creates a generator that ranks by fridge overlap unless
// configured otherwise.
func NewMenuGenerator(opts ...GeneratorOption) *MenuGeneratorImpl {
	g := &MenuGeneratorImpl{
		ranking:        generation.RankByFridgeOverlap,
		onUnitMismatch: logUnitMismatch,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.ranking == generation.RankShuffle && g.shuffler == nil {
		g.shuffler = generation.NewTimeSeededShuffler()
	}
	return g
}

// WithRanking selects the candidate ordering used by the fill pass.
func WithRanking(r generation.Ranking) GeneratorOption {
	return func(g *MenuGeneratorImpl) {
		g.ranking = r
	}
}

// WithShuffler injects the random source used by shuffle ranking.
func WithShuffler(s generation.Shuffler) GeneratorOption {
	return func(g *MenuGeneratorImpl) {
		g.shuffler = s
	}
}

// WithUnitMismatchHandler replaces the default warning log for dish/fridge
// unit disagreements.
func WithUnitMismatchHandler(fn func(generation.UnitMismatch)) GeneratorOption {
	return func(g *MenuGeneratorImpl) {
		if fn != nil {
			g.onUnitMismatch = fn
		}
	}
}

func logUnitMismatch(m generation.UnitMismatch) {
	log.Warn().
		Str("ingredient_id", m.IngredientID).
		Str("dish_unit", string(m.DishUnit)).
		Str("fridge_unit", string(m.FridgeUnit)).
		Msg("Unit mismatch between dish and fridge, quantities not converted")
}

// Generate selects dishes for a new menu.
func (g *MenuGeneratorImpl) Generate(snapshot Snapshot, req GenerationRequest) (*Selection, error) {
	totalSlots := req.TotalSlots.Normalize()
	if totalSlots.Total() == 0 {
		return nil, validationError(msgNoSlotsRequested)
	}

	fridge := generation.NewFridgeIndex(snapshot.Fridge)
	slots, err := g.selectDishes(selectionContext{
		totalSlots:          totalSlots,
		requiredDishes:      req.RequiredDishes,
		requiredIngredients: req.RequiredIngredients,
		includeTags:         req.IncludeTags,
		dishes:              snapshot.Dishes,
		fridge:              fridge,
	})
	if err != nil {
		return nil, err
	}

	sel := &Selection{Slots: slots, Locked: []model.MenuItem{}, Replaced: []model.MenuItem{}}
	sel.ShoppingList = g.shoppingList(sel.DishIDs(), snapshot)
	return sel, nil
}

// Regenerate keeps locked items and refills every other slot. Locked dishes
// cannot be chosen again and consume one slot of their meal type each.
func (g *MenuGeneratorImpl) Regenerate(snapshot Snapshot, req GenerationRequest, existing []model.MenuItem) (*Selection, error) {
	totalSlots := req.TotalSlots.Normalize()
	if totalSlots.Total() == 0 {
		return nil, validationError(msgNoSlotsRequested)
	}

	sel := &Selection{Locked: []model.MenuItem{}, Replaced: []model.MenuItem{}}
	lockedDishIDs := make(map[string]struct{})
	for _, item := range existing {
		if item.Locked {
			sel.Locked = append(sel.Locked, item)
			lockedDishIDs[item.DishID] = struct{}{}
		} else {
			sel.Replaced = append(sel.Replaced, item)
		}
	}

	adjusted := totalSlots.Clone()
	for _, item := range sel.Locked {
		if adjusted[item.MealType] <= 0 {
			return nil, insufficientDishes(msgLockedExceedSlots)
		}
		adjusted[item.MealType]--
	}

	catalog := model.NewDishIndex(snapshot.Dishes)
	satisfied := make(map[string]struct{})
	for _, item := range sel.Locked {
		for _, ing := range catalog[item.DishID].Ingredients {
			satisfied[ing.IngredientID] = struct{}{}
		}
	}

	var pendingIngredients []string
	for _, id := range req.RequiredIngredients {
		if _, ok := satisfied[id]; !ok {
			pendingIngredients = append(pendingIngredients, id)
		}
	}

	var pendingDishes []string
	for _, id := range req.RequiredDishes {
		if _, ok := lockedDishIDs[id]; !ok {
			pendingDishes = append(pendingDishes, id)
		}
	}

	slots, err := g.selectDishes(selectionContext{
		totalSlots:          adjusted,
		requiredDishes:      pendingDishes,
		requiredIngredients: pendingIngredients,
		includeTags:         req.IncludeTags,
		dishes:              snapshot.Dishes,
		fridge:              generation.NewFridgeIndex(snapshot.Fridge),
		excluded:            lockedDishIDs,
	})
	if err != nil {
		return nil, err
	}

	sel.Slots = slots
	sel.ShoppingList = g.shoppingList(sel.DishIDs(), snapshot)
	return sel, nil
}

func (g *MenuGeneratorImpl) shoppingList(dishIDs []string, snapshot Snapshot) []model.ShoppingListLine {
	return generation.CalculateShoppingList(
		dishIDs,
		generation.NewDishIngredientLookup(snapshot.Dishes),
		snapshot.Fridge,
		generation.WithUnitMismatchHandler(g.onUnitMismatch),
	)
}

type selectionContext struct {
	totalSlots          model.SlotRequest
	requiredDishes      []string
	requiredIngredients []string
	includeTags         []string
	dishes              []model.Dish
	fridge              generation.FridgeIndex
	excluded            map[string]struct{}
}

func (g *MenuGeneratorImpl) selectDishes(sc selectionContext) ([]model.FilledSlot, error) {
	available := filterDishes(sc.dishes, sc.excluded)
	index := model.NewDishIndex(available)

	required, err := sanitizeRequiredDishes(sc.requiredDishes, index, sc.excluded)
	if err != nil {
		return nil, err
	}

	if len(sc.requiredIngredients) > 0 {
		if err := selectDishesForIngredients(sc.requiredIngredients, available, sc.fridge, required); err != nil {
			return nil, err
		}
	}

	if err := ensureRequiredDishCounts(required, index, sc.totalSlots); err != nil {
		return nil, err
	}

	pool := buildPool(available, sc.totalSlots, sc.includeTags)
	for _, id := range required.ids {
		dish := index[id]
		if !containsDish(pool[dish.MealType], id) {
			pool[dish.MealType] = append(pool[dish.MealType], dish)
		}
	}

	result := generation.FillSlots(generation.FillInput{
		TotalSlots:      sc.totalSlots,
		RequiredDishIDs: required.ids,
		Pool:            pool,
		Fridge:          sc.fridge,
		Ranking:         g.ranking,
		Shuffler:        g.shuffler,
	})

	for _, id := range required.ids {
		if _, ok := result.Used[id]; !ok {
			return nil, insufficientDishes(msgRequiredNotPlaced)
		}
	}

	return result.Slots, nil
}

// orderedSet keeps dish IDs unique in insertion order.
type orderedSet struct {
	ids  []string
	seen map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *orderedSet) has(id string) bool {
	_, ok := s.seen[id]
	return ok
}

func filterDishes(dishes []model.Dish, excluded map[string]struct{}) []model.Dish {
	out := make([]model.Dish, 0, len(dishes))
	for _, d := range dishes {
		if !d.IsActive {
			continue
		}
		if _, skip := excluded[d.ID]; skip {
			continue
		}
		out = append(out, d)
	}
	return out
}

func sanitizeRequiredDishes(required []string, index model.DishIndex, excluded map[string]struct{}) (*orderedSet, error) {
	set := newOrderedSet()
	for _, id := range required {
		if _, skip := excluded[id]; skip {
			continue
		}
		if _, ok := index[id]; !ok {
			return nil, insufficientDishes(msgRequiredDishUnavailable)
		}
		set.add(id)
	}
	return set, nil
}

// selectDishesForIngredients adds, for each ingredient not yet covered by a
// required dish, the best ranked dish containing it.
func selectDishesForIngredients(
	ingredientIDs []string,
	dishes []model.Dish,
	fridge generation.FridgeIndex,
	required *orderedSet,
) error {
	index := model.NewDishIndex(dishes)
	for _, ingredientID := range ingredientIDs {
		covered := false
		for _, id := range required.ids {
			if index[id].HasIngredient(ingredientID) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		var candidates []model.Dish
		for _, d := range dishes {
			if d.HasIngredient(ingredientID) {
				candidates = append(candidates, d)
			}
		}

		picked := ""
		for _, d := range generation.RankByFridge(candidates, fridge) {
			if !required.has(d.ID) {
				picked = d.ID
				break
			}
		}
		if picked == "" {
			return insufficientDishes(msgRequiredIngredients)
		}
		required.add(picked)
	}
	return nil
}

func ensureRequiredDishCounts(required *orderedSet, index model.DishIndex, totalSlots model.SlotRequest) error {
	counts := make(map[model.MealType]int)
	for _, id := range required.ids {
		dish, ok := index[id]
		if !ok {
			return insufficientDishes(msgRequiredDishUnavailable)
		}
		counts[dish.MealType]++
	}
	for mt, count := range counts {
		if count > totalSlots[mt] {
			return insufficientDishes(msgNotEnoughSlots)
		}
	}
	return nil
}

func buildPool(dishes []model.Dish, totalSlots model.SlotRequest, tags []string) generation.Pool {
	pool := make(generation.Pool)
	for _, mt := range model.MealTypes {
		if totalSlots[mt] <= 0 {
			continue
		}
		pool[mt] = generation.BuildPool(dishes, mt, tags, false)
	}
	return pool
}

func containsDish(dishes []model.Dish, id string) bool {
	for _, d := range dishes {
		if d.ID == id {
			return true
		}
	}
	return false
}
