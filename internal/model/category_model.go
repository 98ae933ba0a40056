package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	Name        string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"size:60;not null;index" json:"slug"`
	Description string `gorm:"size:200" json:"description"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`
	ImageCount  int    `gorm:"default:0" json:"image_count"`

	Images []ImageModel `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
