// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"carmarket/internal/models"
	"carmarket/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc func(ctx context.Context, req *models.SignupRequest) error
	LoginFunc  func(ctx context.Context, req *models.LoginRequest) (*service.LoginResult, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*service.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockListingService is a mock implementation of ListingServicer.
type MockListingService struct {
	CreateFunc func(ctx context.Context, userID primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error)
	ListFunc   func(ctx context.Context) ([]models.Listing, error)
	UpdateFunc func(ctx context.Context, userID primitive.ObjectID, listingID string, update map[string]interface{}) error
	DeleteFunc func(ctx context.Context, userID primitive.ObjectID, listingID string) error
}

func (m *MockListingService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockListingService) List(ctx context.Context) ([]models.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockListingService) Update(ctx context.Context, userID primitive.ObjectID, listingID string, update map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, listingID, update)
	}
	return nil
}

func (m *MockListingService) Delete(ctx context.Context, userID primitive.ObjectID, listingID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, listingID)
	}
	return nil
}

// MockMessageService is a mock implementation of MessageServicer.
type MockMessageService struct {
	ListConversationsFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error)
	SendFunc              func(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.SendMessageResponse, error)
}

func (m *MockMessageService) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.Conversation, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMessageService) Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, senderID, req)
	}
	return nil, nil
}

// MockContentService is a mock implementation of ContentServicer.
type MockContentService struct {
	ListingDetailsFunc  func(ctx context.Context, req *models.ListingDetailsRequest) (*models.ListingDetails, error)
	AssessConditionFunc func(ctx context.Context, req *models.ConditionRequest) (*models.ConditionReport, error)
	SuggestPriceFunc    func(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error)
	SearchFiltersFunc   func(ctx context.Context, req *models.SearchFiltersRequest) (*models.SearchFilters, error)
}

func (m *MockContentService) ListingDetails(ctx context.Context, req *models.ListingDetailsRequest) (*models.ListingDetails, error) {
	if m.ListingDetailsFunc != nil {
		return m.ListingDetailsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContentService) AssessCondition(ctx context.Context, req *models.ConditionRequest) (*models.ConditionReport, error) {
	if m.AssessConditionFunc != nil {
		return m.AssessConditionFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContentService) SuggestPrice(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error) {
	if m.SuggestPriceFunc != nil {
		return m.SuggestPriceFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContentService) SearchFilters(ctx context.Context, req *models.SearchFiltersRequest) (*models.SearchFilters, error) {
	if m.SearchFiltersFunc != nil {
		return m.SearchFiltersFunc(ctx, req)
	}
	return nil, nil
}

// MockUploadService is a mock implementation of UploadServicer.
type MockUploadService struct {
	CreatePhotoUploadFunc func(ctx context.Context, userID primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error)
}

func (m *MockUploadService) CreatePhotoUpload(ctx context.Context, userID primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error) {
	if m.CreatePhotoUploadFunc != nil {
		return m.CreatePhotoUploadFunc(ctx, userID, req)
	}
	return nil, nil
}

var (
	_ service.AuthServicer    = (*MockAuthService)(nil)
	_ service.ListingServicer = (*MockListingService)(nil)
	_ service.MessageServicer = (*MockMessageService)(nil)
	_ service.ContentServicer = (*MockContentService)(nil)
	_ service.UploadServicer  = (*MockUploadService)(nil)
)
