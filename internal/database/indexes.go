package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionIndex is one index the application relies on.
type CollectionIndex struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes lists every index the queries and uniqueness rules depend on.
func Indexes() []CollectionIndex {
	return []CollectionIndex{
		// Signup relies on this to reject concurrent duplicate emails.
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},

		{ListingsCollection, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{ListingsCollection, mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}},

		{ConversationsCollection, mongo.IndexModel{Keys: bson.D{
			{Key: "participants", Value: 1},
			{Key: "updatedAt", Value: -1},
		}}},

		{MessagesCollection, mongo.IndexModel{Keys: bson.D{
			{Key: "conversationId", Value: 1},
			{Key: "timestamp", Value: -1},
		}}},
	}
}

// EnsureIndexes creates any missing indexes. Existing identical indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range Indexes() {
		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, idx.Model)
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.Collection, err)
		}
		log.Printf("Created index %s on %s", name, idx.Collection)
	}
	return nil
}
