package service

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const presignedURLExpiry = 15 * time.Minute

// photoExtensions lists the accepted content types with their allowed file
// extensions; the first is used when the file name has none of them.
var photoExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
}

// UploadService issues upload URLs for listing photos.
type UploadService struct {
	store storage.Storage
}

// NewUploadService creates a new UploadService. A nil store disables uploads.
func NewUploadService(store storage.Storage) *UploadService {
	return &UploadService{store: store}
}

// CreatePhotoUpload returns a presigned PUT URL for one photo under the
// user's prefix, plus the public URL to store in the listing.
func (s *UploadService) CreatePhotoUpload(ctx context.Context, userID primitive.ObjectID, req *models.PhotoUploadRequest) (*models.PhotoUploadResponse, error) {
	if s.store == nil {
		return nil, apperrors.ErrUploadsNotAvailable
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	exts, ok := photoExtensions[contentType]
	if !ok {
		return nil, apperrors.ErrUnsupportedMedia
	}

	ext := exts[0]
	if fileExt := strings.ToLower(path.Ext(req.FileName)); slices.Contains(exts, fileExt) {
		ext = fileExt
	}

	key := fmt.Sprintf("listings/%s/%s%s", userID.Hex(), uuid.NewString(), ext)

	uploadURL, err := s.store.GetPresignedPutURL(ctx, key, contentType, presignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign photo upload: %w", err)
	}

	return &models.PhotoUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
		PhotoURL:  s.store.PublicURL(key),
	}, nil
}

