package usecase

import (
	"strings"
	"sync"

	"pixvault/internal/entity"
	"pixvault/internal/repo/persistent"
	"pixvault/pkg/apperr"
	"pixvault/pkg/assethost"
	"pixvault/pkg/logger"

	"github.com/gosimple/slug"
)

// AssetHost is the slice of the remote image store the usecases need.
// *assethost.Client satisfies it.
type AssetHost interface {
	Upload(key string, data []byte, contentType string) (*assethost.UploadResult, error)
	Delete(key string) error
	DeleteFolder(prefix string) error
	ThumbnailURL(key string) string
}

const assetKeyRoot = "gallery"

type CategoryUseCase interface {
	Create(name, description string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(id string, name, description *string) (*entity.Category, error)
	Delete(id string) (*entity.CategoryDeleteSummary, error)
	Search(term string) ([]*entity.Category, error)
	Stats() (*entity.CategoryStats, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	imageRepo    persistent.ImageRepository
	assetHost    AssetHost
	logger       *logger.Logger
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	imageRepo persistent.ImageRepository,
	assetHost AssetHost,
	logger *logger.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		assetHost:    assetHost,
		logger:       logger,
	}
}

func (uc *categoryUseCase) Create(name, description string) (*entity.Category, error) {
	normalized := normalizeCategoryName(name)
	if err := validateCategoryName(normalized); err != nil {
		return nil, err
	}
	if err := validateCategoryDescription(description); err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.NameExists(normalized, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.NewConflict("category with this name already exists")
	}

	category := &entity.Category{
		Name:        normalized,
		Slug:        slug.Make(normalized),
		Description: strings.TrimSpace(description),
		IsActive:    true,
		ImageCount:  0,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) List() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

func (uc *categoryUseCase) GetByID(id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(id)
}

func (uc *categoryUseCase) GetByName(name string) (*entity.Category, error) {
	return uc.categoryRepo.GetByName(name)
}

func (uc *categoryUseCase) Update(id string, name, description *string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		normalized := normalizeCategoryName(*name)
		if err := validateCategoryName(normalized); err != nil {
			return nil, err
		}
		if normalized != category.Name {
			exists, err := uc.categoryRepo.NameExists(normalized, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperr.NewConflict("category with this name already exists")
			}
			category.Name = normalized
			category.Slug = slug.Make(normalized)
		}
	}

	if description != nil {
		if err := validateCategoryDescription(*description); err != nil {
			return nil, err
		}
		category.Description = strings.TrimSpace(*description)
	}

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete cascades: remote assets first (best-effort, concurrent), then the
// image rows, then the category row, then the remote folder. Once image
// cleanup has begun nothing on the remote side may fail the operation.
func (uc *categoryUseCase) Delete(id string) (*entity.CategoryDeleteSummary, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	images, err := uc.imageRepo.ListByCategoryID(id)
	if err != nil {
		return nil, err
	}

	for _, outcome := range uc.deleteRemoteAssets(images) {
		if outcome.Err != nil {
			uc.logger.Warn("cascade delete: failed to remove remote asset %s: %v", outcome.Key, outcome.Err)
		}
	}

	deleted, err := uc.imageRepo.DeleteByCategoryID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Delete(id); err != nil {
		return nil, err
	}

	if err := uc.assetHost.DeleteFolder(assetKeyRoot + "/" + category.Slug); err != nil {
		uc.logger.Warn("cascade delete: failed to remove remote folder for %s: %v", category.Slug, err)
	}

	return &entity.CategoryDeleteSummary{
		Category:           category.Name,
		DeletedImagesCount: int(deleted),
	}, nil
}

func (uc *categoryUseCase) Search(term string) ([]*entity.Category, error) {
	return uc.categoryRepo.Search(term)
}

func (uc *categoryUseCase) Stats() (*entity.CategoryStats, error) {
	return uc.categoryRepo.Stats()
}

type assetDeleteOutcome struct {
	Key string
	Err error
}

// deleteRemoteAssets issues one delete per asset concurrently and collects a
// per-item outcome. A failure never cancels the other deletes.
func (uc *categoryUseCase) deleteRemoteAssets(images []*entity.Image) []assetDeleteOutcome {
	outcomes := make([]assetDeleteOutcome, len(images))
	var wg sync.WaitGroup
	for i, image := range images {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			outcomes[i] = assetDeleteOutcome{Key: key, Err: uc.assetHost.Delete(key)}
		}(i, image.AssetKey)
	}
	wg.Wait()
	return outcomes
}

func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateCategoryName(name string) error {
	if len(name) < 2 || len(name) > 50 {
		return apperr.NewValidation("name", "must be between 2 and 50 characters")
	}
	return nil
}

func validateCategoryDescription(description string) error {
	if len(strings.TrimSpace(description)) > 200 {
		return apperr.NewValidation("description", "must be at most 200 characters")
	}
	return nil
}
