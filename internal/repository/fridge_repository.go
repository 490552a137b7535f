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

// FridgeDocument represents the stock of one ingredient.
type FridgeDocument struct {
	ID           string               `bson:"_id"`
	IngredientID string               `bson:"ingredient_id"`
	Name         string               `bson:"name,omitempty"`
	Quantity     primitive.Decimal128 `bson:"quantity"`
	Unit         string               `bson:"unit,omitempty"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func documentToFridgeEntry(doc FridgeDocument) (model.FridgeEntry, error) {
	qty, err := fromDecimal128(doc.Quantity)
	if err != nil {
		return model.FridgeEntry{}, err
	}
	return model.FridgeEntry{
		ID:           doc.ID,
		IngredientID: doc.IngredientID,
		Name:         doc.Name,
		Quantity:     qty,
		Unit:         model.Unit(doc.Unit),
	}, nil
}

// FridgeRepository provides methods for fridge stock operations.
type FridgeRepository struct {
	collection *mongo.Collection
}

// NewFridgeRepository creates a new fridge repository.
func NewFridgeRepository(db *MongoDB) *FridgeRepository {
	return &FridgeRepository{
		collection: db.Fridge,
	}
}

// List returns all fridge entries ordered by ingredient name.
func (r *FridgeRepository) List(ctx context.Context) ([]model.FridgeEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []FridgeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]model.FridgeEntry, 0, len(docs))
	for _, doc := range docs {
		e, err := documentToFridgeEntry(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FindByIngredient returns the fridge entry for an ingredient.
func (r *FridgeRepository) FindByIngredient(ctx context.Context, ingredientID string) (*model.FridgeEntry, error) {
	var doc FridgeDocument
	err := r.collection.FindOne(ctx, bson.M{"ingredient_id": ingredientID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e, err := documentToFridgeEntry(doc)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert sets the stock of entry.IngredientID. The entry ID is kept when the
// ingredient already has a document.
func (r *FridgeRepository) Upsert(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error) {
	qty, err := toDecimal128(entry.Quantity)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"quantity":   qty,
			"name":       entry.Name,
			"unit":       string(entry.Unit),
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": entry.ID},
	}

	var doc FridgeDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"ingredient_id": entry.IngredientID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}

	stored, err := documentToFridgeEntry(doc)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// DeleteByIngredient removes the entry of an ingredient and reports whether
// one existed.
func (r *FridgeRepository) DeleteByIngredient(ctx context.Context, ingredientID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"ingredient_id": ingredientID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
