// Command main populates the configured store backend with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"connecthub/internal/config"
	"connecthub/internal/database"
	"connecthub/internal/repository"
	"connecthub/internal/seed"
	"connecthub/internal/store"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	maxDays := flag.Int("days", 90, "Spread post creation over the past N days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var stores *store.Stores
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		stores = repository.NewGormStores(db)
	default:
		log.Fatalf("Seeding requires a persistent backend; STORE_BACKEND is %q", cfg.StoreBackend)
	}

	s := seed.NewSeeder(stores, seed.Options{
		Users:   *numUsers,
		Posts:   *numPosts,
		MaxDays: *maxDays,
	})

	if err := s.Run(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Every seeded user's password is %q", seed.Password)
}
