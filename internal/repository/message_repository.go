package repository

import (
	"context"

	"carmarket/internal/database"
	"carmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository defines the interface for message data operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	FindRecent(ctx context.Context, conversationID primitive.ObjectID, limit int) ([]models.Message, error)
}

type messageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection(database.MessagesCollection),
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return err
	}

	msg.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindRecent returns the newest limit messages of a conversation in
// chronological order. Ties on timestamp are ordered by _id.
func (r *messageRepository) FindRecent(ctx context.Context, conversationID primitive.ObjectID, limit int) ([]models.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	if messages == nil {
		return []models.Message{}, nil
	}

	// newest-first from the store; flip to oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
