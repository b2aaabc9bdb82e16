package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func listingRouter(m *mocks.MockListingService, userID primitive.ObjectID) *gin.Engine {
	h := NewListingHandler(m)
	router := gin.New()
	api := router.Group("/api", withUser(userID))
	api.POST("/listings", h.CreateListing)
	api.GET("/listings", h.ListListings)
	api.PATCH("/listings", h.UpdateListing)
	api.DELETE("/listings", h.DeleteListing)
	return router
}

func TestListingHandler_CreateListing(t *testing.T) {
	userID := primitive.NewObjectID()
	listingID := primitive.NewObjectID()

	validBody := map[string]interface{}{
		"make":      "Honda",
		"model":     "City",
		"year":      2020,
		"photoUrls": []string{"https://cdn.example.com/1.jpg"},
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockListingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "creates the listing for the caller",
			body: map[string]interface{}{
				"make":      "Honda",
				"model":     "City",
				"year":      2020,
				"photoUrls": []string{"https://cdn.example.com/1.jpg"},
				"userId":    primitive.NewObjectID().Hex(),
				"status":    "Sold",
				"sunroof":   true,
			},
			mockSetup: func(m *mocks.MockListingService) {
				m.CreateFunc = func(ctx context.Context, owner primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error) {
					assert.Equal(t, userID, owner)
					assert.Equal(t, "Honda", req.Make)
					assert.Equal(t, map[string]interface{}{"sunroof": true}, req.Extra)
					return &models.Listing{ID: listingID}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"listingId":"` + listingID.Hex() + `"}`,
		},
		{
			name:           "malformed JSON",
			body:           `{"make": "Honda",`,
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "missing year",
			body: map[string]interface{}{
				"make": "Honda", "model": "City", "photoUrls": []string{"https://cdn.example.com/1.jpg"},
			},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required fields"}`,
		},
		{
			name: "empty photo list",
			body: map[string]interface{}{
				"make": "Honda", "model": "City", "year": 2020, "photoUrls": []string{},
			},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required fields"}`,
		},
		{
			name: "malformed VIN",
			body: map[string]interface{}{
				"make": "Honda", "model": "City", "year": 2020,
				"photoUrls": []string{"https://cdn.example.com/1.jpg"}, "vin": "SHORT",
			},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "operator key",
			body: map[string]interface{}{
				"make": "Honda", "model": "City", "year": 2020,
				"photoUrls": []string{"https://cdn.example.com/1.jpg"}, "$where": "1",
			},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "store failure",
			body: validBody,
			mockSetup: func(m *mocks.MockListingService) {
				m.CreateFunc = func(ctx context.Context, owner primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error) {
					return nil, errors.New("disk full")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockListingService{}
			tt.mockSetup(mockService)

			w := performRequest(listingRouter(mockService, userID), http.MethodPost, "/api/listings", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestListingHandler_ListListings(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns listings with sellers and extras", func(t *testing.T) {
		created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
		mockService := &mocks.MockListingService{
			ListFunc: func(ctx context.Context) ([]models.Listing, error) {
				return []models.Listing{{
					ID:            primitive.NewObjectID(),
					UserID:        userID,
					ListingFields: models.ListingFields{Make: "Honda", Model: "City", Year: 2020},
					Status:        models.ListingStatusActive,
					CreatedAt:     created,
					UpdatedAt:     created,
					Seller:        &models.Seller{Name: "Alice Kumar"},
					Extra:         map[string]interface{}{"sunroof": true},
				}}, nil
			},
		}

		w := performRequest(listingRouter(mockService, userID), http.MethodGet, "/api/listings", nil)

		require.Equal(t, http.StatusOK, w.Code)
		listings := decodeBody(t, w)["listings"].([]interface{})
		require.Len(t, listings, 1)
		listing := listings[0].(map[string]interface{})
		assert.Equal(t, "Honda", listing["make"])
		assert.Equal(t, true, listing["sunroof"])
		assert.Equal(t, "Alice Kumar", listing["seller"].(map[string]interface{})["name"])
	})

	t.Run("empty feed is an empty array", func(t *testing.T) {
		mockService := &mocks.MockListingService{
			ListFunc: func(ctx context.Context) ([]models.Listing, error) {
				return []models.Listing{}, nil
			},
		}

		w := performRequest(listingRouter(mockService, userID), http.MethodGet, "/api/listings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"listings":[]}`, w.Body.String())
	})
}

func TestListingHandler_UpdateListing(t *testing.T) {
	userID := primitive.NewObjectID()
	listingID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockListingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "updates an owned listing",
			body: map[string]interface{}{"listingId": listingID, "update": map[string]interface{}{"status": "Sold"}},
			mockSetup: func(m *mocks.MockListingService) {
				m.UpdateFunc = func(ctx context.Context, owner primitive.ObjectID, id string, update map[string]interface{}) error {
					assert.Equal(t, userID, owner)
					assert.Equal(t, listingID, id)
					assert.Equal(t, "Sold", update["status"])
					return nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Listing updated successfully"}`,
		},
		{
			name:           "missing update",
			body:           map[string]interface{}{"listingId": listingID},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required fields"}`,
		},
		{
			name:           "missing listing id",
			body:           map[string]interface{}{"update": map[string]interface{}{"price": 1}},
			mockSetup:      func(m *mocks.MockListingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required fields"}`,
		},
		{
			name: "not owned",
			body: map[string]interface{}{"listingId": listingID, "update": map[string]interface{}{"price": 1}},
			mockSetup: func(m *mocks.MockListingService) {
				m.UpdateFunc = func(ctx context.Context, owner primitive.ObjectID, id string, update map[string]interface{}) error {
					return apperrors.ErrListingNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"listing not found or not owned by you"}`,
		},
		{
			name: "operator key",
			body: map[string]interface{}{"listingId": listingID, "update": map[string]interface{}{"$set": 1}},
			mockSetup: func(m *mocks.MockListingService) {
				m.UpdateFunc = func(ctx context.Context, owner primitive.ObjectID, id string, update map[string]interface{}) error {
					return apperrors.ErrInvalidBody
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockListingService{}
			tt.mockSetup(mockService)

			w := performRequest(listingRouter(mockService, userID), http.MethodPatch, "/api/listings", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestListingHandler_DeleteListing(t *testing.T) {
	userID := primitive.NewObjectID()
	listingID := primitive.NewObjectID().Hex()

	t.Run("deletes an owned listing", func(t *testing.T) {
		mockService := &mocks.MockListingService{
			DeleteFunc: func(ctx context.Context, owner primitive.ObjectID, id string) error {
				assert.Equal(t, userID, owner)
				assert.Equal(t, listingID, id)
				return nil
			},
		}

		w := performRequest(listingRouter(mockService, userID), http.MethodDelete, "/api/listings", map[string]string{"listingId": listingID})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Listing deleted successfully"}`, w.Body.String())
	})

	t.Run("missing listing id", func(t *testing.T) {
		w := performRequest(listingRouter(&mocks.MockListingService{}, userID), http.MethodDelete, "/api/listings", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		mockService := &mocks.MockListingService{
			DeleteFunc: func(ctx context.Context, owner primitive.ObjectID, id string) error {
				return apperrors.ErrListingNotFound
			},
		}

		w := performRequest(listingRouter(mockService, userID), http.MethodDelete, "/api/listings", map[string]string{"listingId": listingID})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
