package handler

import (
	"context"
	"net/http"
	"testing"

	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUploadHandler_CreatePhotoUpload(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUploadService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "returns the presigned URL",
			body: models.PhotoUploadRequest{FileName: "front.jpg", ContentType: "image/jpeg"},
			mockSetup: func(m *mocks.MockUploadService) {
				m.CreatePhotoUploadFunc = func(ctx context.Context, owner primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error) {
					assert.Equal(t, userID, owner)
					return &models.PhotoUploadResponse{UploadURL: "https://s3/put", Key: "listings/k.jpg", PhotoURL: "https://cdn/k.jpg"}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"uploadUrl":"https://s3/put","key":"listings/k.jpg","photoUrl":"https://cdn/k.jpg"}`,
		},
		{
			name:           "missing content type",
			body:           map[string]string{"fileName": "front.jpg"},
			mockSetup:      func(m *mocks.MockUploadService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required fields"}`,
		},
		{
			name: "unsupported content type",
			body: models.PhotoUploadRequest{FileName: "clip.mp4", ContentType: "video/mp4"},
			mockSetup: func(m *mocks.MockUploadService) {
				m.CreatePhotoUploadFunc = func(ctx context.Context, owner primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error) {
					return nil, apperrors.ErrUnsupportedMedia
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"` + apperrors.ErrUnsupportedMedia.Error() + `"}`,
		},
		{
			name: "uploads disabled",
			body: models.PhotoUploadRequest{FileName: "front.jpg", ContentType: "image/jpeg"},
			mockSetup: func(m *mocks.MockUploadService) {
				m.CreatePhotoUploadFunc = func(ctx context.Context, owner primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error) {
					return nil, apperrors.ErrUploadsNotAvailable
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"photo uploads are not configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUploadService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/api/uploads/photos", withUser(userID), NewUploadHandler(mockService).CreatePhotoUpload)

			w := performRequest(router, http.MethodPost, "/api/uploads/photos", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
