// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client        *mongo.Client
	Database      *mongo.Database
	Dishes        *mongo.Collection
	Fridge        *mongo.Collection
	Menus         *mongo.Collection
	MenuItems     *mongo.Collection
	ShoppingLists *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:        client,
		Database:      db,
		Dishes:        db.Collection("dishes"),
		Fridge:        db.Collection("fridge_items"),
		Menus:         db.Collection("menus"),
		MenuItems:     db.Collection("menu_items"),
		ShoppingLists: db.Collection("shopping_lists"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Dish pools are built per meal type
	dishMealTypeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "meal_type", Value: 1}, {Key: "name", Value: 1}},
	}
	if _, err := m.Dishes.Indexes().CreateOne(ctx, dishMealTypeIndex); err != nil {
		return err
	}

	// One fridge entry per ingredient
	fridgeIngredientIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "ingredient_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Fridge.Indexes().CreateOne(ctx, fridgeIngredientIndex); err != nil {
		return err
	}

	menuCreatedIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}
	_, _ = m.Menus.Indexes().CreateOne(ctx, menuCreatedIndex)

	menuItemsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "menu_id", Value: 1}, {Key: "position", Value: 1}},
	}
	_, _ = m.MenuItems.Indexes().CreateOne(ctx, menuItemsIndex)

	// Each menu owns exactly one shopping list
	shoppingListMenuIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "menu_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.ShoppingLists.Indexes().CreateOne(ctx, shoppingListMenuIndex)

	return nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	// Use a short timeout for health checks
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
