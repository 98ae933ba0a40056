package persistent

import (
	"pixvault/internal/entity"
	"pixvault/internal/model"
)

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		IsActive:    m.IsActive,
		ImageCount:  m.ImageCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		IsActive:    e.IsActive,
		ImageCount:  e.ImageCount,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCategoryEntities(models []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(models))
	for i := range models {
		categories[i] = ToCategoryEntity(&models[i])
	}
	return categories
}

func ToImageEntity(m *model.ImageModel) *entity.Image {
	if m == nil {
		return nil
	}

	return &entity.Image{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		AssetKey:     m.AssetKey,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		OriginalName: m.OriginalName,
		FileSize:     m.FileSize,
		Format:       m.Format,
		Width:        m.Width,
		Height:       m.Height,
		Tags:         []string(m.Tags),
		IsActive:     m.IsActive,
		IsFeatured:   m.IsFeatured,
		ViewCount:    m.ViewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToImageModel(e *entity.Image) *model.ImageModel {
	if e == nil {
		return nil
	}

	return &model.ImageModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		CategoryID:   e.CategoryID,
		AssetKey:     e.AssetKey,
		URL:          e.URL,
		ThumbnailURL: e.ThumbnailURL,
		OriginalName: e.OriginalName,
		FileSize:     e.FileSize,
		Format:       e.Format,
		Width:        e.Width,
		Height:       e.Height,
		Tags:         e.Tags,
		IsActive:     e.IsActive,
		IsFeatured:   e.IsFeatured,
		ViewCount:    e.ViewCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToImageEntities(models []model.ImageModel) []*entity.Image {
	images := make([]*entity.Image, len(models))
	for i := range models {
		images[i] = ToImageEntity(&models[i])
	}
	return images
}
