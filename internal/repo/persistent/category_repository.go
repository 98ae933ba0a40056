package persistent

import (
	"errors"

	"pixvault/internal/entity"
	"pixvault/internal/model"
	"pixvault/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Search(term string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	NameExists(name string, excludeID string) (bool, error)
	IncrementImageCount(id string, delta int) error
	Stats() (*entity.CategoryStats, error)
	RecountImageCounts() (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Create(categoryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewConflict("category with this name already exists")
		}
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&categoryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("category")
		}
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetByName(name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.Where("name ILIKE ? AND is_active = ?", "%"+name+"%", true).
		Order("name ASC").
		First(&categoryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("category")
		}
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) List() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return ToCategoryEntities(categoryModels), nil
}

func (r *categoryRepository) Search(term string) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	pattern := "%" + term + "%"
	err := r.db.Where("is_active = ? AND (name ILIKE ? OR description ILIKE ?)", true, pattern, pattern).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return ToCategoryEntities(categoryModels), nil
}

func (r *categoryRepository) Update(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Save(categoryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewConflict("category with this name already exists")
		}
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Delete(&model.CategoryModel{}, "id = ?", id).Error
}

func (r *categoryRepository) NameExists(name string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&model.CategoryModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) IncrementImageCount(id string, delta int) error {
	return r.db.Model(&model.CategoryModel{}).
		Where("id = ?", id).
		UpdateColumn("image_count", clause.Expr{SQL: "image_count + ?", Vars: []interface{}{delta}}).Error
}

func (r *categoryRepository) Stats() (*entity.CategoryStats, error) {
	var stats entity.CategoryStats
	err := r.db.Model(&model.CategoryModel{}).
		Where("is_active = ?", true).
		Select("COUNT(*) AS total_categories, COALESCE(SUM(image_count), 0) AS total_images, COALESCE(AVG(image_count), 0) AS avg_image_count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecountImageCounts rebuilds every image_count from the images table. This is
// the repair path; steady state relies on atomic increments.
func (r *categoryRepository) RecountImageCounts() (int64, error) {
	result := r.db.Exec(`
		UPDATE categories c
		SET image_count = (
			SELECT COUNT(*) FROM images i
			WHERE i.category_id = c.id AND i.is_active = TRUE
		)`)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
