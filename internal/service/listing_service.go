package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Keys an update may never touch, including dotted paths below them.
var immutableListingKeys = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"userId":    {},
	"createdAt": {},
	"seller":    {},
}

// listingFieldIndex maps the JSON key of each typed listing field to its struct index.
var listingFieldIndex = func() map[string]int {
	t := reflect.TypeOf(models.ListingFields{})
	idx := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		idx[name] = i
	}
	return idx
}()

// ListingService handles listing business logic.
type ListingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

// NewListingService creates a new ListingService.
func NewListingService(listingRepo repository.ListingRepository, userRepo repository.UserRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

// Create stores a new active listing owned by userID.
func (s *ListingService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateListingRequest) (*models.Listing, error) {
	if strings.TrimSpace(req.Make) == "" || strings.TrimSpace(req.Model) == "" || req.Year == 0 || len(req.PhotoURLs) == 0 {
		return nil, apperrors.ErrMissingFields
	}

	now := time.Now()
	listing := &models.Listing{
		UserID:        userID,
		ListingFields: req.ListingFields,
		Status:        models.ListingStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
		Extra:         req.Extra,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// List returns every listing, newest first, each with its seller view.
// Owners are resolved with a single batched lookup; listings whose owner
// cannot be found are returned without a seller.
func (s *ListingService) List(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return listings, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(listings))
	ownerIDs := make([]primitive.ObjectID, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.UserID]; ok {
			continue
		}
		seen[l.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, l.UserID)
	}

	owners, err := s.userRepo.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	sellers := make(map[primitive.ObjectID]*models.Seller, len(owners))
	for i := range owners {
		sellers[owners[i].ID] = owners[i].SellerView()
	}

	for i := range listings {
		seller, ok := sellers[listings[i].UserID]
		if !ok {
			log.Printf("listing %s: owner %s not found", listings[i].ID.Hex(), listings[i].UserID.Hex())
			continue
		}
		listings[i].Seller = seller
	}

	return listings, nil
}

// Update merges update into the listing if userID owns it. A malformed
// listing id is reported the same way as a missing one.
func (s *ListingService) Update(ctx context.Context, userID primitive.ObjectID, listingID string, update map[string]interface{}) error {
	if listingID == "" || update == nil {
		return apperrors.ErrMissingFields
	}

	id, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return apperrors.ErrListingNotFound
	}

	set, err := sanitizeListingUpdate(update, time.Now())
	if err != nil {
		return err
	}

	return s.listingRepo.UpdateOwned(ctx, id, userID, set)
}

// Delete removes the listing if userID owns it.
func (s *ListingService) Delete(ctx context.Context, userID primitive.ObjectID, listingID string) error {
	if listingID == "" {
		return apperrors.ErrMissingFields
	}

	id, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return apperrors.ErrListingNotFound
	}

	return s.listingRepo.DeleteOwned(ctx, id, userID)
}

// sanitizeListingUpdate turns a client update into the document for a single
// $set. Immutable keys are dropped, operator keys are rejected and typed
// fields are coerced to their declared types. Dotted paths are only allowed
// below extension fields.
func sanitizeListingUpdate(update map[string]interface{}, now time.Time) (bson.M, error) {
	set := bson.M{}
	typed := make(map[string]interface{})

	for key, value := range update {
		root, _, nested := strings.Cut(key, ".")
		if _, immutable := immutableListingKeys[root]; immutable {
			continue
		}
		for _, segment := range strings.Split(key, ".") {
			if segment == "" || strings.HasPrefix(segment, "$") {
				return nil, fmt.Errorf("%w: field %q", apperrors.ErrInvalidBody, key)
			}
		}
		_, known := listingFieldIndex[root]
		if nested && (known || root == "status" || root == "updatedAt") {
			return nil, fmt.Errorf("%w: field %q", apperrors.ErrInvalidBody, key)
		}
		switch {
		case known:
			typed[key] = value
		case key == "status":
			status, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: status must be a string", apperrors.ErrInvalidBody)
			}
			set[key] = status
		default:
			set[key] = value
		}
	}

	if len(typed) > 0 {
		body, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidBody, err)
		}
		var fields models.ListingFields
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidBody, err)
		}
		v := reflect.ValueOf(fields)
		for key := range typed {
			set[key] = v.Field(listingFieldIndex[key]).Interface()
		}
	}

	set["updatedAt"] = now
	return set, nil
}
