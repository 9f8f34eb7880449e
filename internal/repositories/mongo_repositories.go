package repositories

import (
	"context"
	"errors"
	"time"

	"tastypoint-cart/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Cart snapshot collection
type mongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) CartKVStore {
	return &mongoStore{
		collection: db.Collection("cart_snapshots"),
	}
}

func (r *mongoStore) Get(ctx context.Context, key string) (string, error) {
	var doc models.CartSnapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Data, nil
}

func (r *mongoStore) Set(ctx context.Context, key, value string) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{
		"data":       value,
		"updated_at": time.Now(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
