package service

import (
	"context"
	"strings"
	"time"

	"carmarket/internal/database"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageService handles conversations and messages between buyers and sellers.
type MessageService struct {
	convoRepo   repository.ConversationRepository
	messageRepo repository.MessageRepository
	tx          database.Transactor
}

// NewMessageService creates a new MessageService.
func NewMessageService(convoRepo repository.ConversationRepository, messageRepo repository.MessageRepository, tx database.Transactor) *MessageService {
	return &MessageService{
		convoRepo:   convoRepo,
		messageRepo: messageRepo,
		tx:          tx,
	}
}

// ListConversations returns the user's conversations, most recently updated
// first, each with its newest messages in chronological order.
func (s *MessageService) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error) {
	convos, err := s.convoRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range convos {
		messages, err := s.messageRepo.FindRecent(ctx, convos[i].ID, models.ConversationMessageWindow)
		if err != nil {
			return nil, err
		}
		convos[i].Messages = messages
	}

	return convos, nil
}

// Send stores a message. Without a conversation id a new conversation
// between sender and recipient is always started.
func (s *MessageService) Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	if req.RecipientID == "" || strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrMissingFields
	}

	recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
	if err != nil {
		return nil, apperrors.ErrInvalidBody
	}

	var listingID *primitive.ObjectID
	if req.ListingID != "" {
		id, err := primitive.ObjectIDFromHex(req.ListingID)
		if err != nil {
			return nil, apperrors.ErrInvalidBody
		}
		listingID = &id
	}

	// Mongo keeps millisecond precision; match it so the response equals what is stored.
	now := time.Now().UTC().Truncate(time.Millisecond)
	msg := &models.Message{
		ListingID:   listingID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        req.Text,
		Timestamp:   now,
		Status:      models.MessageSent,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		convo, err := s.resolveConversation(ctx, senderID, recipientID, listingID, req.ConversationID, now)
		if err != nil {
			return err
		}

		// fn runs again when the driver retries a transient transaction error.
		msg.ID = primitive.NilObjectID
		msg.ConversationID = convo.ID
		if err := s.messageRepo.Create(ctx, msg); err != nil {
			return err
		}

		return s.convoRepo.SetLastMessage(ctx, convo.ID, msg)
	})
	if err != nil {
		return nil, err
	}

	return &models.SendMessageResponse{
		Message: msg,
		ConvoID: msg.ConversationID.Hex(),
	}, nil
}

// resolveConversation loads the conversation the caller named, or creates a
// new one when none was named.
func (s *MessageService) resolveConversation(ctx context.Context, senderID, recipientID primitive.ObjectID, listingID *primitive.ObjectID, conversationID string, now time.Time) (*models.Conversation, error) {
	if conversationID == "" {
		convo := &models.Conversation{
			Participants: []primitive.ObjectID{senderID, recipientID},
			ListingID:    listingID,
			LastMessage:  nil,
			UnreadCount:  map[string]int{recipientID.Hex(): 1},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.convoRepo.Create(ctx, convo); err != nil {
			return nil, err
		}
		return convo, nil
	}

	id, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, apperrors.ErrConversationNotFound
	}

	convo, err := s.convoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !convo.HasParticipant(senderID) {
		return nil, apperrors.ErrConversationNotFound
	}

	return convo, nil
}
