package main

import (
	"log"

	"pixvault/internal/repo/persistent"
	"pixvault/pkg/config"
	"pixvault/pkg/database"
)

// Recomputes every category's image_count from the images table. The counter
// is maintained incrementally at runtime; run this after manual data edits or
// a suspected drift.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	categoryRepo := persistent.NewCategoryRepository(db)

	updated, err := categoryRepo.RecountImageCounts()
	if err != nil {
		log.Fatalf("Failed to recount image counts: %v", err)
	}
	log.Printf("Recounted image_count for %d categories", updated)
}
