package persistent

import (
	"errors"
	"fmt"

	"pixvault/internal/entity"
	"pixvault/internal/model"
	"pixvault/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns List is allowed to sort by.
var imageSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"viewCount": "view_count",
}

type ImageRepository interface {
	Create(image *entity.Image) error
	GetByID(id string) (*entity.Image, error)
	GetAnyByID(id string) (*entity.Image, error)
	List(opts entity.ImageListOptions) ([]*entity.Image, int64, error)
	ListByCategoryID(categoryID string) ([]*entity.Image, error)
	ListRecentByCategoryID(categoryID string, limit int) ([]*entity.Image, error)
	Featured(limit int) ([]*entity.Image, error)
	Update(image *entity.Image) error
	Delete(id string) error
	DeleteByCategoryID(categoryID string) (int64, error)
	IncrementViews(id string) error
	Stats() (*entity.ImageStats, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *entity.Image) error {
	imageModel := ToImageModel(image)
	if err := r.db.Create(imageModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewConflict("image with this asset key already exists")
		}
		return err
	}
	*image = *ToImageEntity(imageModel)
	return nil
}

func (r *imageRepository) GetByID(id string) (*entity.Image, error) {
	var imageModel model.ImageModel
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&imageModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("image")
		}
		return nil, err
	}
	return ToImageEntity(&imageModel), nil
}

// GetAnyByID ignores the is_active filter; deletion goes through here so an
// already-deactivated record can still be cleaned up.
func (r *imageRepository) GetAnyByID(id string) (*entity.Image, error) {
	var imageModel model.ImageModel
	err := r.db.Where("id = ?", id).First(&imageModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("image")
		}
		return nil, err
	}
	return ToImageEntity(&imageModel), nil
}

func (r *imageRepository) List(opts entity.ImageListOptions) ([]*entity.Image, int64, error) {
	query := r.db.Model(&model.ImageModel{}).Where("is_active = ?", true)

	if opts.CategoryID != "" {
		query = query.Where("category_id = ?", opts.CategoryID)
	}
	if opts.Featured != nil {
		query = query.Where("is_featured = ?", *opts.Featured)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR array_to_string(tags, ' ') ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := imageSortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}

	var imageModels []model.ImageModel
	err := query.Order(fmt.Sprintf("%s %s", column, direction)).
		Limit(opts.Limit).
		Offset((opts.Page - 1) * opts.Limit).
		Find(&imageModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToImageEntities(imageModels), total, nil
}

// ListByCategoryID returns every image row under the category, active or
// not; the cascade delete must reach remote assets of inactive records too.
func (r *imageRepository) ListByCategoryID(categoryID string) ([]*entity.Image, error) {
	var imageModels []model.ImageModel
	err := r.db.Where("category_id = ?", categoryID).Find(&imageModels).Error
	if err != nil {
		return nil, err
	}
	return ToImageEntities(imageModels), nil
}

func (r *imageRepository) ListRecentByCategoryID(categoryID string, limit int) ([]*entity.Image, error) {
	var imageModels []model.ImageModel
	query := r.db.Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&imageModels).Error; err != nil {
		return nil, err
	}
	return ToImageEntities(imageModels), nil
}

func (r *imageRepository) Featured(limit int) ([]*entity.Image, error) {
	var imageModels []model.ImageModel
	err := r.db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&imageModels).Error
	if err != nil {
		return nil, err
	}
	return ToImageEntities(imageModels), nil
}

func (r *imageRepository) Update(image *entity.Image) error {
	imageModel := ToImageModel(image)
	if err := r.db.Save(imageModel).Error; err != nil {
		return err
	}
	*image = *ToImageEntity(imageModel)
	return nil
}

func (r *imageRepository) Delete(id string) error {
	return r.db.Delete(&model.ImageModel{}, "id = ?", id).Error
}

func (r *imageRepository) DeleteByCategoryID(categoryID string) (int64, error) {
	result := r.db.Delete(&model.ImageModel{}, "category_id = ?", categoryID)
	return result.RowsAffected, result.Error
}

func (r *imageRepository) IncrementViews(id string) error {
	return r.db.Model(&model.ImageModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", clause.Expr{SQL: "view_count + ?", Vars: []interface{}{1}}).Error
}

func (r *imageRepository) Stats() (*entity.ImageStats, error) {
	var stats entity.ImageStats
	err := r.db.Model(&model.ImageModel{}).
		Where("is_active = ?", true).
		Select(`COUNT(*) AS total_images,
			COALESCE(SUM(view_count), 0) AS total_views,
			COALESCE(AVG(view_count), 0) AS avg_views,
			COALESCE(SUM(CASE WHEN is_featured THEN 1 ELSE 0 END), 0) AS featured_count,
			COALESCE(SUM(file_size), 0) AS total_file_size`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
