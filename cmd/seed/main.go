package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"carmarket/internal/config"
	"carmarket/internal/database"
	"carmarket/internal/models"
	"carmarket/internal/repository"
	"carmarket/internal/storage"
	"carmarket/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedListing describes one sample car and the placeholder photo used for it.
type seedListing struct {
	owner  int
	fields models.ListingFields
	photo  string
	age    time.Duration
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	var photoStore storage.Storage
	if cfg.UploadsEnabled() {
		photoStore = storage.NewS3Client(storage.S3Options{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			UseSSL:        cfg.S3UseSSL,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	}

	ctx := context.Background()
	db := mongoDB.Database

	clearCollections(ctx, db)

	users := seedUsers(ctx, repository.NewUserRepository(db))
	listings := seedListings(ctx, repository.NewListingRepository(db), photoStore, users)
	seedConversation(ctx, db, users, listings[0])

	log.Println("Seed completed successfully!")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{
		database.UsersCollection,
		database.ListingsCollection,
		database.ConversationsCollection,
		database.MessagesCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
}

func seedUsers(ctx context.Context, repo repository.UserRepository) []*models.User {
	phone := "+91 98765 43210"
	rating := 4.7
	reviews := 12
	verified := true

	users := []*models.User{
		{
			Email:        "alice@example.com",
			FullName:     "Alice Kumar",
			Phone:        &phone,
			Rating:       &rating,
			ReviewsCount: &reviews,
			Verified:     &verified,
			MemberSince:  "2023",
		},
		{
			Email:    "bob@example.com",
			FullName: "Bob Mehta",
		},
	}
	passwords := []string{"password123", "password456"}

	for i, u := range users {
		hash, err := auth.HashPassword(passwords[i])
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		u.Password = hash
		u.CreatedAt = time.Now()
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}

	log.Printf("Seeded %d users", len(users))
	return users
}

func seedListings(ctx context.Context, repo repository.ListingRepository, store storage.Storage, users []*models.User) []*models.Listing {
	price := func(v float64) *float64 { return &v }
	km := func(v int) *int { return &v }

	samples := []seedListing{
		{
			owner: 0,
			fields: models.ListingFields{
				Make: "Honda", Model: "City", Year: 2020,
				Title:        "2020 Honda City VX, single owner",
				Description:  "Well kept sedan with full service history.",
				KeyFeatures:  []string{"Single owner", "Service records available"},
				Price:        price(850000),
				Mileage:      km(42000),
				FuelType:     "Petrol",
				Transmission: "Manual",
				Pincode:      "560001",
				Location:     "Bengaluru",
			},
			photo: "honda-city.jpg",
			age:   48 * time.Hour,
		},
		{
			owner: 0,
			fields: models.ListingFields{
				Make: "Hyundai", Model: "Creta", Year: 2019,
				Title:        "2019 Hyundai Creta SX automatic",
				Price:        price(1150000),
				Mileage:      km(61000),
				FuelType:     "Diesel",
				Transmission: "Automatic",
				Location:     "Pune",
			},
			photo: "hyundai-creta.jpg",
			age:   24 * time.Hour,
		},
		{
			owner: 1,
			fields: models.ListingFields{
				Make: "Maruti Suzuki", Model: "Swift", Year: 2017,
				Title:        "2017 Swift VXi, city driven",
				Price:        price(420000),
				Mileage:      km(78000),
				FuelType:     "Petrol",
				Transmission: "Manual",
				Location:     "Chennai",
			},
			photo: "maruti-swift.jpg",
			age:   2 * time.Hour,
		},
	}

	now := time.Now()
	listings := make([]*models.Listing, 0, len(samples))
	for _, s := range samples {
		owner := users[s.owner]
		s.fields.PhotoURLs = []string{photoURL(ctx, store, owner.ID, s.photo)}

		listing := &models.Listing{
			UserID:        owner.ID,
			ListingFields: s.fields,
			Status:        models.ListingStatusActive,
			CreatedAt:     now.Add(-s.age),
			UpdatedAt:     now.Add(-s.age),
		}
		if err := repo.Create(ctx, listing); err != nil {
			log.Fatalf("Failed to seed listing: %v", err)
		}
		listings = append(listings, listing)
	}

	log.Printf("Seeded %d listings", len(listings))
	return listings
}

// photoURL uploads a placeholder image when storage is configured, otherwise
// it points at a placeholder image service.
func photoURL(ctx context.Context, store storage.Storage, owner primitive.ObjectID, name string) string {
	if store == nil {
		return "https://placehold.co/800x600.jpg?text=" + name
	}

	key := "listings/" + owner.Hex() + "/seed-" + name
	// JPEG SOI/EOI markers only; enough for a placeholder object.
	placeholder := []byte{0xFF, 0xD8, 0xFF, 0xD9}
	if err := store.PutObject(ctx, key, bytes.NewReader(placeholder), "image/jpeg"); err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return "https://placehold.co/800x600.jpg?text=" + name
	}

	log.Printf("Uploaded placeholder photo: %s", key)
	return store.PublicURL(key)
}

func seedConversation(ctx context.Context, db *mongo.Database, users []*models.User, listing *models.Listing) {
	convoRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	seller, buyer := users[0], users[1]
	listingID := listing.ID
	start := time.Now().Add(-90 * time.Minute).UTC().Truncate(time.Millisecond)

	convo := &models.Conversation{
		Participants: []primitive.ObjectID{buyer.ID, seller.ID},
		ListingID:    &listingID,
		UnreadCount:  map[string]int{seller.ID.Hex(): 1},
		CreatedAt:    start,
		UpdatedAt:    start,
	}
	if err := convoRepo.Create(ctx, convo); err != nil {
		log.Fatalf("Failed to seed conversation: %v", err)
	}

	lines := []struct {
		from, to *models.User
		text     string
	}{
		{buyer, seller, "Hi, is the City still available?"},
		{seller, buyer, "Yes it is. Would you like to see it this weekend?"},
		{buyer, seller, "Saturday morning works for me."},
	}

	for i, l := range lines {
		msg := &models.Message{
			ConversationID: convo.ID,
			ListingID:      &listingID,
			SenderID:       l.from.ID,
			RecipientID:    l.to.ID,
			Text:           l.text,
			Timestamp:      start.Add(time.Duration(i) * 10 * time.Minute),
			Status:         models.MessageSent,
		}
		if err := messageRepo.Create(ctx, msg); err != nil {
			log.Fatalf("Failed to seed message: %v", err)
		}
		if err := convoRepo.SetLastMessage(ctx, convo.ID, msg); err != nil {
			log.Fatalf("Failed to update conversation: %v", err)
		}
	}

	log.Printf("Seeded 1 conversation with %d messages", len(lines))
}
