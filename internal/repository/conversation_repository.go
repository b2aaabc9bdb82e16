package repository

import (
	"context"
	"errors"

	"carmarket/internal/database"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationRepository defines the interface for conversation data operations.
type ConversationRepository interface {
	Create(ctx context.Context, convo *models.Conversation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error)
	FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error)
	SetLastMessage(ctx context.Context, id primitive.ObjectID, msg *models.Message) error
}

type conversationRepository struct {
	collection *mongo.Collection
}

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(db *mongo.Database) ConversationRepository {
	return &conversationRepository{
		collection: db.Collection(database.ConversationsCollection),
	}
}

func (r *conversationRepository) Create(ctx context.Context, convo *models.Conversation) error {
	result, err := r.collection.InsertOne(ctx, convo)
	if err != nil {
		return err
	}

	convo.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	var convo models.Conversation

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&convo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, err
	}

	return &convo, nil
}

// FindByParticipant returns the user's conversations, most recently active first.
func (r *conversationRepository) FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "updatedAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convos []models.Conversation
	if err := cursor.All(ctx, &convos); err != nil {
		return nil, err
	}

	if convos == nil {
		convos = []models.Conversation{}
	}

	return convos, nil
}

// SetLastMessage overwrites the denormalized last message and bumps updatedAt
// to the message timestamp.
func (r *conversationRepository) SetLastMessage(ctx context.Context, id primitive.ObjectID, msg *models.Message) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastMessage": msg, "updatedAt": msg.Timestamp}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrConversationNotFound
	}

	return nil
}
