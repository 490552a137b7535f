package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// ShoppingListDocument represents a shopping list with embedded items.
type ShoppingListDocument struct {
	ID        string                     `bson:"_id"`
	MenuID    string                     `bson:"menu_id"`
	Name      string                     `bson:"name"`
	Status    string                     `bson:"status"`
	CreatedAt time.Time                  `bson:"created_at"`
	Items     []ShoppingListItemDocument `bson:"items"`
}

// ShoppingListItemDocument is one line of a shopping list.
type ShoppingListItemDocument struct {
	ID           string               `bson:"id"`
	IngredientID string               `bson:"ingredient_id"`
	Quantity     primitive.Decimal128 `bson:"quantity"`
	Unit         string               `bson:"unit,omitempty"`
	Bought       bool                 `bson:"bought"`
}

func shoppingItemsToDocuments(items []model.ShoppingListItem) ([]ShoppingListItemDocument, error) {
	docs := make([]ShoppingListItemDocument, 0, len(items))
	for _, item := range items {
		qty, err := toDecimal128(item.Quantity)
		if err != nil {
			return nil, err
		}
		docs = append(docs, ShoppingListItemDocument{
			ID:           item.ID,
			IngredientID: item.IngredientID,
			Quantity:     qty,
			Unit:         string(item.Unit),
			Bought:       item.Bought,
		})
	}
	return docs, nil
}

func documentToShoppingItem(doc ShoppingListItemDocument) (model.ShoppingListItem, error) {
	qty, err := fromDecimal128(doc.Quantity)
	if err != nil {
		return model.ShoppingListItem{}, err
	}
	return model.ShoppingListItem{
		ID:           doc.ID,
		IngredientID: doc.IngredientID,
		Quantity:     qty,
		Unit:         model.Unit(doc.Unit),
		Bought:       doc.Bought,
	}, nil
}

func documentToShoppingList(doc ShoppingListDocument) (model.ShoppingList, error) {
	list := model.ShoppingList{
		ID:        doc.ID,
		MenuID:    doc.MenuID,
		Name:      doc.Name,
		Status:    model.Status(doc.Status),
		CreatedAt: doc.CreatedAt,
		Items:     make([]model.ShoppingListItem, 0, len(doc.Items)),
	}
	for _, itemDoc := range doc.Items {
		item, err := documentToShoppingItem(itemDoc)
		if err != nil {
			return model.ShoppingList{}, err
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

// ShoppingListRepository provides methods for shopping list operations.
type ShoppingListRepository struct {
	collection *mongo.Collection
}

// NewShoppingListRepository creates a new shopping list repository.
func NewShoppingListRepository(db *MongoDB) *ShoppingListRepository {
	return &ShoppingListRepository{
		collection: db.ShoppingLists,
	}
}

// List returns all shopping lists, newest first.
func (r *ShoppingListRepository) List(ctx context.Context) ([]model.ShoppingList, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ShoppingListDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	lists := make([]model.ShoppingList, 0, len(docs))
	for _, doc := range docs {
		list, err := documentToShoppingList(doc)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// Get returns the shopping list with the given ID.
func (r *ShoppingListRepository) Get(ctx context.Context, id string) (*model.ShoppingList, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByMenuID returns the shopping list owned by a menu.
func (r *ShoppingListRepository) GetByMenuID(ctx context.Context, menuID string) (*model.ShoppingList, error) {
	return r.findOne(ctx, bson.M{"menu_id": menuID})
}

func (r *ShoppingListRepository) findOne(ctx context.Context, filter bson.M) (*model.ShoppingList, error) {
	var doc ShoppingListDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list, err := documentToShoppingList(doc)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Create inserts a shopping list with its items.
func (r *ShoppingListRepository) Create(ctx context.Context, list model.ShoppingList) error {
	items, err := shoppingItemsToDocuments(list.Items)
	if err != nil {
		return err
	}
	_, err = r.collection.InsertOne(ctx, ShoppingListDocument{
		ID:        list.ID,
		MenuID:    list.MenuID,
		Name:      list.Name,
		Status:    string(list.Status),
		CreatedAt: list.CreatedAt,
		Items:     items,
	})
	return err
}

// Replace renames the list and swaps its items.
func (r *ShoppingListRepository) Replace(ctx context.Context, id, name string, items []model.ShoppingListItem) (*model.ShoppingList, error) {
	docs, err := shoppingItemsToDocuments(items)
	if err != nil {
		return nil, err
	}

	var doc ShoppingListDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "items": docs}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list, err := documentToShoppingList(doc)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// SetItemBought toggles the bought flag of one item.
func (r *ShoppingListRepository) SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItem, error) {
	var doc ShoppingListDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": listID, "items.id": itemID},
		bson.M{"$set": bson.M{"items.$.bought": bought}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for _, itemDoc := range doc.Items {
		if itemDoc.ID == itemID {
			item, err := documentToShoppingItem(itemDoc)
			if err != nil {
				return nil, err
			}
			return &item, nil
		}
	}
	return nil, nil
}

// UpdateStatusByMenu mirrors a menu status onto its shopping list.
func (r *ShoppingListRepository) UpdateStatusByMenu(ctx context.Context, menuID string, status model.Status) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"menu_id": menuID}, bson.M{"$set": bson.M{"status": string(status)}})
	return err
}

// DeleteByMenu removes the shopping list owned by a menu.
func (r *ShoppingListRepository) DeleteByMenu(ctx context.Context, menuID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"menu_id": menuID})
	return err
}
