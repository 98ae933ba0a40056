package entity

import "time"

// Category is a named grouping that owns zero or more images. ImageCount is a
// denormalized cache of the owned active-image count, maintained with atomic
// increments and reconciled by the repair tool.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	ImageCount  int       `json:"image_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryStats aggregates over active categories.
type CategoryStats struct {
	TotalCategories int64   `json:"total_categories"`
	TotalImages     int64   `json:"total_images"`
	AvgImageCount   float64 `json:"avg_image_count"`
}

// CategoryDeleteSummary reports the outcome of a cascade delete.
type CategoryDeleteSummary struct {
	Category           string `json:"category"`
	DeletedImagesCount int    `json:"deleted_images_count"`
}
