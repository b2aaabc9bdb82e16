package main

import (
	"context"
	"log"
	"time"

	"carmarket/internal/config"
	"carmarket/internal/database"
)

func main() {
	log.Println("Creating indexes...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		// Most often duplicate emails that predate the unique index.
		log.Printf("Index creation failed: %v", err)
		return
	}

	log.Println("Indexes created successfully!")
}
