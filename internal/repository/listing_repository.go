package repository

import (
	"context"

	"carmarket/internal/database"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingRepository defines the interface for listing data operations.
//
// Mutations are filtered by owner; a listing that exists but belongs to
// someone else is reported as apperrors.ErrListingNotFound.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindAll(ctx context.Context) ([]models.Listing, error)
	UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, set bson.M) error
	DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) error
}

type listingRepository struct {
	collection *mongo.Collection
}

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(db *mongo.Database) ListingRepository {
	return &listingRepository{
		collection: db.Collection(database.ListingsCollection),
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	result, err := r.collection.InsertOne(ctx, listing)
	if err != nil {
		return err
	}

	listing.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns every listing, newest first.
func (r *listingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	return listings, nil
}

// UpdateOwned applies set as a single $set on the listing if ownerID owns it.
func (r *listingRepository) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, set bson.M) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": ownerID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrListingNotFound
	}

	return nil
}

// DeleteOwned removes the listing if ownerID owns it.
func (r *listingRepository) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrListingNotFound
	}

	return nil
}
