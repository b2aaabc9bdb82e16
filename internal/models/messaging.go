package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageStatus is the delivery state of a message. Only MessageSent is
// ever written by the server.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// ConversationMessageWindow is how many of the newest messages are returned
// with each conversation.
const ConversationMessageWindow = 20

// Message is a single immutable chat message.
type Message struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"65a4f0c2e13b4a5d9c8b7a61"`
	ConversationID primitive.ObjectID  `json:"conversationId" bson:"conversationId" example:"65a4f0c2e13b4a5d9c8b7a60"`
	ListingID      *primitive.ObjectID `json:"listingId,omitempty" bson:"listingId,omitempty" example:"507f1f77bcf86cd799439011"`
	SenderID       primitive.ObjectID  `json:"senderId" bson:"senderId" example:"507f1f77bcf86cd799439012"`
	RecipientID    primitive.ObjectID  `json:"recipientId" bson:"recipientId" example:"507f1f77bcf86cd799439013"`
	Text           string              `json:"text" bson:"text" example:"Is the car still available?"`
	Timestamp      time.Time           `json:"timestamp" bson:"timestamp" example:"2024-01-15T09:30:00Z"`
	Status         MessageStatus       `json:"status" bson:"status" example:"sent"`
}

// Conversation is a two-party thread, optionally about a listing.
type Conversation struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"65a4f0c2e13b4a5d9c8b7a60"`
	Participants []primitive.ObjectID `json:"participants" bson:"participants"`
	ListingID    *primitive.ObjectID  `json:"listingId,omitempty" bson:"listingId,omitempty" example:"507f1f77bcf86cd799439011"`
	LastMessage  *Message             `json:"lastMessage" bson:"lastMessage"`
	UnreadCount  map[string]int       `json:"unreadCount" bson:"unreadCount"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`

	// Messages holds the newest messages, oldest first. Filled at read time.
	Messages []Message `json:"messages" bson:"-"`
}

// HasParticipant reports whether userID takes part in the conversation.
func (c *Conversation) HasParticipant(userID primitive.ObjectID) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// SendMessageRequest is the body of a message send. Without ConversationID
// a new conversation is started.
type SendMessageRequest struct {
	ConversationID string `json:"conversationId" example:"65a4f0c2e13b4a5d9c8b7a60"`
	ListingID      string `json:"listingId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439011"`
	RecipientID    string `json:"recipientId" binding:"required,objectid" example:"507f1f77bcf86cd799439013"`
	Text           string `json:"text" binding:"required" example:"Is the car still available?"`
}

// SendMessageResponse returns the stored message and its conversation id.
type SendMessageResponse struct {
	Message *Message `json:"message"`
	ConvoID string   `json:"convoId" example:"65a4f0c2e13b4a5d9c8b7a60"`
}

// ConversationsResponse wraps the caller's conversations.
type ConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
}
