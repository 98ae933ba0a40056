package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ImageModel struct {
	ID           string         `gorm:"type:uuid;primary_key" json:"id"`
	Title        string         `gorm:"size:100;not null" json:"title"`
	Description  string         `gorm:"size:500" json:"description"`
	CategoryID   string         `gorm:"type:uuid;not null;index" json:"category_id"`
	AssetKey     string         `gorm:"not null;uniqueIndex" json:"asset_key"`
	URL          string         `gorm:"not null" json:"url"`
	ThumbnailURL string         `json:"thumbnail_url"`
	OriginalName string         `json:"original_name"`
	FileSize     int64          `gorm:"default:0" json:"file_size"`
	Format       string         `gorm:"size:20" json:"format"`
	Width        int            `gorm:"default:0" json:"width"`
	Height       int            `gorm:"default:0" json:"height"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	IsFeatured   bool           `gorm:"default:false;index" json:"is_featured"`
	ViewCount    int            `gorm:"default:0" json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ImageModel) TableName() string {
	return "images"
}

func (i *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
