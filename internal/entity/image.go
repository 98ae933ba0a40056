package entity

import "time"

// Image describes one uploaded picture. AssetKey is the join key to the
// remote asset host; the remote object is owned by this record and removed
// with it.
type Image struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"category_id"`
	AssetKey     string    `json:"asset_key"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	Format       string    `json:"format"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Tags         []string  `json:"tags"`
	IsActive     bool      `json:"is_active"`
	IsFeatured   bool      `json:"is_featured"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImageSummary is the trimmed shape used in homepage listings.
type ImageSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryImages groups a category summary with its most recent images.
type CategoryImages struct {
	Category Category       `json:"category"`
	Images   []ImageSummary `json:"images"`
}

// ImageStats aggregates over active images.
type ImageStats struct {
	TotalImages   int64   `json:"total_images"`
	TotalViews    int64   `json:"total_views"`
	AvgViews      float64 `json:"avg_views"`
	FeaturedCount int64   `json:"featured_count"`
	TotalFileSize int64   `json:"total_file_size"`
}

// ImageDeleteSummary reports what was removed.
type ImageDeleteSummary struct {
	Title    string `json:"title"`
	AssetKey string `json:"asset_key"`
}

// ImageListOptions are the filters and paging knobs for List.
type ImageListOptions struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	CategoryID string
	Featured   *bool
	Search     string
}
