// Package service contains business logic for the application.
package service

import (
	"context"

	"carmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error)
}

// ListingServicer defines the interface for listing operations.
type ListingServicer interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error)
	List(ctx context.Context) ([]models.Listing, error)
	Update(ctx context.Context, userID primitive.ObjectID, listingID string, update map[string]interface{}) error
	Delete(ctx context.Context, userID primitive.ObjectID, listingID string) error
}

// MessageServicer defines the interface for buyer/seller messaging.
type MessageServicer interface {
	ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error)
	Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.SendMessageResponse, error)
}

// ContentServicer defines the interface for AI-assisted listing content.
type ContentServicer interface {
	ListingDetails(ctx context.Context, req *models.ListingDetailsRequest) (*models.ListingDetails, error)
	AssessCondition(ctx context.Context, req *models.ConditionRequest) (*models.ConditionReport, error)
	SuggestPrice(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error)
	SearchFilters(ctx context.Context, req *models.SearchFiltersRequest) (*models.SearchFilters, error)
}

// UploadServicer defines the interface for listing photo uploads.
type UploadServicer interface {
	CreatePhotoUpload(ctx context.Context, userID primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ ListingServicer = (*ListingService)(nil)
	_ MessageServicer = (*MessageService)(nil)
	_ ContentServicer = (*ContentService)(nil)
	_ UploadServicer  = (*UploadService)(nil)
)
