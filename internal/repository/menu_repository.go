package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// MenuDocument represents a menu document.
type MenuDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

// MenuItemDocument represents one filled slot of a menu. Position keeps the
// generation order stable across reads.
type MenuItemDocument struct {
	ID       string `bson:"_id"`
	MenuID   string `bson:"menu_id"`
	MealType string `bson:"meal_type"`
	DishID   string `bson:"dish_id"`
	Locked   bool   `bson:"locked"`
	Cooked   bool   `bson:"cooked"`
	Position int    `bson:"position"`
}

func menuToDocument(m model.Menu) MenuDocument {
	return MenuDocument{
		ID:        m.ID,
		Name:      m.Name,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func documentToMenu(doc MenuDocument) model.Menu {
	return model.Menu{
		ID:        doc.ID,
		Name:      doc.Name,
		Status:    model.Status(doc.Status),
		CreatedAt: doc.CreatedAt,
	}
}

func menuItemToDocument(item model.MenuItem, position int) MenuItemDocument {
	return MenuItemDocument{
		ID:       item.ID,
		MenuID:   item.MenuID,
		MealType: string(item.MealType),
		DishID:   item.DishID,
		Locked:   item.Locked,
		Cooked:   item.Cooked,
		Position: position,
	}
}

func documentToMenuItem(doc MenuItemDocument) model.MenuItem {
	return model.MenuItem{
		ID:       doc.ID,
		MenuID:   doc.MenuID,
		MealType: model.MealType(doc.MealType),
		DishID:   doc.DishID,
		Locked:   doc.Locked,
		Cooked:   doc.Cooked,
	}
}

// MenuRepository provides methods for menu and menu item operations.
// Writes spanning both collections are not transactional.
type MenuRepository struct {
	menus *mongo.Collection
	items *mongo.Collection
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *MongoDB) *MenuRepository {
	return &MenuRepository{
		menus: db.Menus,
		items: db.MenuItems,
	}
}

// List returns all menus, newest first.
func (r *MenuRepository) List(ctx context.Context) ([]model.Menu, error) {
	cursor, err := r.menus.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []MenuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	menus := make([]model.Menu, 0, len(docs))
	for _, doc := range docs {
		menus = append(menus, documentToMenu(doc))
	}
	return menus, nil
}

// Get returns the menu with the given ID.
func (r *MenuRepository) Get(ctx context.Context, id string) (*model.Menu, error) {
	var doc MenuDocument
	err := r.menus.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := documentToMenu(doc)
	return &m, nil
}

// ListItems returns the items of a menu in generation order.
func (r *MenuRepository) ListItems(ctx context.Context, menuID string) ([]model.MenuItem, error) {
	return r.findItems(ctx, bson.M{"menu_id": menuID})
}

func (r *MenuRepository) findItems(ctx context.Context, filter bson.M) ([]model.MenuItem, error) {
	cursor, err := r.items.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []MenuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, documentToMenuItem(doc))
	}
	return items, nil
}

// Create inserts a menu and its items.
func (r *MenuRepository) Create(ctx context.Context, menu model.Menu, items []model.MenuItem) error {
	if _, err := r.menus.InsertOne(ctx, menuToDocument(menu)); err != nil {
		return err
	}
	return r.insertItems(ctx, items, 0)
}

func (r *MenuRepository) insertItems(ctx context.Context, items []model.MenuItem, offset int) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for i, item := range items {
		docs = append(docs, menuItemToDocument(item, offset+i))
	}
	_, err := r.items.InsertMany(ctx, docs)
	return err
}

// UpdateName renames a menu.
func (r *MenuRepository) UpdateName(ctx context.Context, id, name string) (*model.Menu, error) {
	return r.updateMenu(ctx, id, bson.M{"name": name})
}

// UpdateStatus sets the lifecycle status of a menu.
func (r *MenuRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error) {
	return r.updateMenu(ctx, id, bson.M{"status": string(status)})
}

func (r *MenuRepository) updateMenu(ctx context.Context, id string, set bson.M) (*model.Menu, error) {
	var doc MenuDocument
	err := r.menus.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := documentToMenu(doc)
	return &m, nil
}

// ReplaceItems deletes removeIDs from the menu and appends add after the
// remaining items.
func (r *MenuRepository) ReplaceItems(ctx context.Context, menuID string, removeIDs []string, add []model.MenuItem) error {
	if len(removeIDs) > 0 {
		_, err := r.items.DeleteMany(ctx, bson.M{"menu_id": menuID, "_id": bson.M{"$in": removeIDs}})
		if err != nil {
			return err
		}
	}

	offset := 0
	var last MenuItemDocument
	err := r.items.FindOne(
		ctx,
		bson.M{"menu_id": menuID},
		options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}}),
	).Decode(&last)
	switch {
	case err == nil:
		offset = last.Position + 1
	case err != mongo.ErrNoDocuments:
		return err
	}

	return r.insertItems(ctx, add, offset)
}

// SetItemCooked toggles the cooked flag of one item.
func (r *MenuRepository) SetItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItem, error) {
	var doc MenuItemDocument
	err := r.items.FindOneAndUpdate(
		ctx,
		bson.M{"_id": itemID, "menu_id": menuID},
		bson.M{"$set": bson.M{"cooked": cooked}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item := documentToMenuItem(doc)
	return &item, nil
}

// SetItemsLocked sets the locked flag on the given items and returns them.
func (r *MenuRepository) SetItemsLocked(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItem, error) {
	filter := bson.M{"menu_id": menuID, "_id": bson.M{"$in": itemIDs}}
	if _, err := r.items.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"locked": locked}}); err != nil {
		return nil, err
	}
	return r.findItems(ctx, filter)
}

// Delete removes a menu and its items. It reports whether the menu existed.
func (r *MenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.menus.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if _, err := r.items.DeleteMany(ctx, bson.M{"menu_id": id}); err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
