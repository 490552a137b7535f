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

// DishDocument represents a dish document with embedded ingredients.
type DishDocument struct {
	ID          string                   `bson:"_id"`
	Name        string                   `bson:"name"`
	MealType    string                   `bson:"meal_type"`
	IsActive    bool                     `bson:"is_active"`
	Tags        []string                 `bson:"tags,omitempty"`
	Ingredients []DishIngredientDocument `bson:"ingredients"`
	UpdatedAt   time.Time                `bson:"updated_at"`
}

// DishIngredientDocument is the per-serving requirement embedded in a dish.
type DishIngredientDocument struct {
	IngredientID  string               `bson:"ingredient_id"`
	Name          string               `bson:"name,omitempty"`
	QtyPerServing primitive.Decimal128 `bson:"qty_per_serving"`
	Unit          string               `bson:"unit,omitempty"`
}

func dishToDocument(d model.Dish) (DishDocument, error) {
	doc := DishDocument{
		ID:          d.ID,
		Name:        d.Name,
		MealType:    string(d.MealType),
		IsActive:    d.IsActive,
		Tags:        d.Tags,
		Ingredients: make([]DishIngredientDocument, 0, len(d.Ingredients)),
		UpdatedAt:   time.Now().UTC(),
	}
	for _, ing := range d.Ingredients {
		qty, err := toDecimal128(ing.QtyPerServing)
		if err != nil {
			return DishDocument{}, err
		}
		doc.Ingredients = append(doc.Ingredients, DishIngredientDocument{
			IngredientID:  ing.IngredientID,
			Name:          ing.Name,
			QtyPerServing: qty,
			Unit:          string(ing.Unit),
		})
	}
	return doc, nil
}

func documentToDish(doc DishDocument) (model.Dish, error) {
	d := model.Dish{
		ID:          doc.ID,
		Name:        doc.Name,
		MealType:    model.MealType(doc.MealType),
		IsActive:    doc.IsActive,
		Tags:        doc.Tags,
		Ingredients: make([]model.DishIngredient, 0, len(doc.Ingredients)),
	}
	for _, ing := range doc.Ingredients {
		qty, err := fromDecimal128(ing.QtyPerServing)
		if err != nil {
			return model.Dish{}, err
		}
		d.Ingredients = append(d.Ingredients, model.DishIngredient{
			IngredientID:  ing.IngredientID,
			Name:          ing.Name,
			QtyPerServing: qty,
			Unit:          model.Unit(ing.Unit),
		})
	}
	return d, nil
}

// DishRepository provides methods for dish catalog operations.
type DishRepository struct {
	collection *mongo.Collection
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *MongoDB) *DishRepository {
	return &DishRepository{
		collection: db.Dishes,
	}
}

// List returns every dish, active or not, ordered by name.
func (r *DishRepository) List(ctx context.Context) ([]model.Dish, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []DishDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	dishes := make([]model.Dish, 0, len(docs))
	for _, doc := range docs {
		d, err := documentToDish(doc)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// GetByID returns the dish with the given ID.
func (r *DishRepository) GetByID(ctx context.Context, id string) (*model.Dish, error) {
	var doc DishDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d, err := documentToDish(doc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Upsert replaces the dish document, creating it when absent.
func (r *DishRepository) Upsert(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	doc, err := dishToDocument(dish)
	if err != nil {
		return nil, err
	}
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &dish, nil
}
