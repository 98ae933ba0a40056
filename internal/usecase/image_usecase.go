package usecase

import (
	"path/filepath"
	"strings"

	"pixvault/internal/entity"
	"pixvault/internal/repo/persistent"
	"pixvault/pkg/apperr"
	"pixvault/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultPageLimit     = 20
	maxPageLimit         = 100
	homepageImagesLimit  = 20
	defaultFeaturedLimit = 20
)

// ImageUploadMeta is the caller-supplied metadata for an upload.
type ImageUploadMeta struct {
	Title        string
	Description  string
	Tags         []string
	IsFeatured   bool
	OriginalName string
	ContentType  string
}

// ImageUpdateInput is a partial-field patch; nil means leave unchanged.
type ImageUpdateInput struct {
	Title       *string
	Description *string
	CategoryID  *string
	Tags        *[]string
	IsFeatured  *bool
}

type ImageUseCase interface {
	Upload(data []byte, meta ImageUploadMeta, categoryID string) (*entity.Image, error)
	UploadWithNewCategory(data []byte, meta ImageUploadMeta, categoryName, categoryDescription string) (*entity.Image, *entity.Category, error)
	GetHomepage() ([]entity.CategoryImages, error)
	GetByCategoryName(name string, limit int) ([]*entity.Image, error)
	GetByID(id string) (*entity.Image, error)
	List(opts entity.ImageListOptions) ([]*entity.Image, int64, int, int, error)
	Update(id string, input ImageUpdateInput) (*entity.Image, error)
	Delete(id string) (*entity.ImageDeleteSummary, error)
	Featured(limit int) ([]*entity.Image, error)
	Search(term string, opts entity.ImageListOptions) ([]*entity.Image, int64, int, int, error)
	Stats() (*entity.ImageStats, error)
}

type imageUseCase struct {
	imageRepo    persistent.ImageRepository
	categoryRepo persistent.CategoryRepository
	categoryUC   CategoryUseCase
	assetHost    AssetHost
	logger       *logger.Logger
}

func NewImageUseCase(
	imageRepo persistent.ImageRepository,
	categoryRepo persistent.CategoryRepository,
	categoryUC CategoryUseCase,
	assetHost AssetHost,
	logger *logger.Logger,
) ImageUseCase {
	return &imageUseCase{
		imageRepo:    imageRepo,
		categoryRepo: categoryRepo,
		categoryUC:   categoryUC,
		assetHost:    assetHost,
		logger:       logger,
	}
}

// Upload pushes the payload to the asset host first; a row is only written
// after the remote object exists. The owning category's image_count is bumped
// with a single atomic increment afterwards.
func (uc *imageUseCase) Upload(data []byte, meta ImageUploadMeta, categoryID string) (*entity.Image, error) {
	if err := validateImageMeta(meta); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperr.NewValidation("image", "file payload is required")
	}

	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	key := assetKeyRoot + "/" + category.Slug + "/" + uuid.New().String() + fileExtension(meta.OriginalName)

	result, err := uc.assetHost.Upload(key, data, meta.ContentType)
	if err != nil {
		return nil, apperr.NewUpstream("upload", err)
	}

	image := &entity.Image{
		Title:        strings.TrimSpace(meta.Title),
		Description:  strings.TrimSpace(meta.Description),
		CategoryID:   category.ID,
		AssetKey:     result.Key,
		URL:          result.URL,
		ThumbnailURL: uc.assetHost.ThumbnailURL(result.Key),
		OriginalName: meta.OriginalName,
		FileSize:     result.Size,
		Format:       result.Format,
		Width:        result.Width,
		Height:       result.Height,
		Tags:         meta.Tags,
		IsActive:     true,
		IsFeatured:   meta.IsFeatured,
		ViewCount:    0,
	}
	if err := uc.imageRepo.Create(image); err != nil {
		// The remote object is now orphaned; try to clean it up.
		if cleanupErr := uc.assetHost.Delete(result.Key); cleanupErr != nil {
			uc.logger.Warn("upload rollback: failed to remove remote asset %s: %v", result.Key, cleanupErr)
		}
		return nil, err
	}

	if err := uc.categoryRepo.IncrementImageCount(category.ID, 1); err != nil {
		uc.logger.Warn("failed to increment image count for category %s: %v", category.ID, err)
	}

	return image, nil
}

func (uc *imageUseCase) UploadWithNewCategory(data []byte, meta ImageUploadMeta, categoryName, categoryDescription string) (*entity.Image, *entity.Category, error) {
	category, err := uc.categoryUC.Create(categoryName, categoryDescription)
	if err != nil {
		return nil, nil, err
	}

	image, err := uc.Upload(data, meta, category.ID)
	if err != nil {
		return nil, nil, err
	}
	category.ImageCount = 1
	return image, category, nil
}

func (uc *imageUseCase) GetHomepage() ([]entity.CategoryImages, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	homepage := make([]entity.CategoryImages, 0, len(categories))
	for _, category := range categories {
		images, err := uc.imageRepo.ListRecentByCategoryID(category.ID, homepageImagesLimit)
		if err != nil {
			return nil, err
		}

		summaries := make([]entity.ImageSummary, len(images))
		for i, image := range images {
			summaries[i] = entity.ImageSummary{
				ID:           image.ID,
				Title:        image.Title,
				URL:          image.URL,
				ThumbnailURL: image.ThumbnailURL,
				CreatedAt:    image.CreatedAt,
			}
		}
		homepage = append(homepage, entity.CategoryImages{
			Category: *category,
			Images:   summaries,
		})
	}
	return homepage, nil
}

func (uc *imageUseCase) GetByCategoryName(name string, limit int) ([]*entity.Image, error) {
	category, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	return uc.imageRepo.ListRecentByCategoryID(category.ID, limit)
}

// GetByID counts every read as one view; the stored counter is bumped with an
// atomic increment so concurrent readers never lose a view.
func (uc *imageUseCase) GetByID(id string) (*entity.Image, error) {
	image, err := uc.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.imageRepo.IncrementViews(id); err != nil {
		uc.logger.Warn("failed to increment view count for image %s: %v", id, err)
		return image, nil
	}
	image.ViewCount++
	return image, nil
}

// List normalizes paging before hitting the store and reports the resolved
// page and limit back to the caller.
func (uc *imageUseCase) List(opts entity.ImageListOptions) ([]*entity.Image, int64, int, int, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}

	images, total, err := uc.imageRepo.List(opts)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return images, total, opts.Page, opts.Limit, nil
}

func (uc *imageUseCase) Update(id string, input ImageUpdateInput) (*entity.Image, error) {
	image, err := uc.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if len(title) < 1 || len(title) > 100 {
			return nil, apperr.NewValidation("title", "must be between 1 and 100 characters")
		}
		image.Title = title
	}
	if input.Description != nil {
		if len(strings.TrimSpace(*input.Description)) > 500 {
			return nil, apperr.NewValidation("description", "must be at most 500 characters")
		}
		image.Description = strings.TrimSpace(*input.Description)
	}
	if input.Tags != nil {
		if err := validateTags(*input.Tags); err != nil {
			return nil, err
		}
		image.Tags = *input.Tags
	}
	if input.IsFeatured != nil {
		image.IsFeatured = *input.IsFeatured
	}

	// A category change is verified against the store so the reference can
	// never dangle, and both counters are kept in step.
	if input.CategoryID != nil && *input.CategoryID != image.CategoryID {
		newCategory, err := uc.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		previousCategoryID := image.CategoryID
		image.CategoryID = newCategory.ID

		if err := uc.imageRepo.Update(image); err != nil {
			return nil, err
		}
		if err := uc.categoryRepo.IncrementImageCount(previousCategoryID, -1); err != nil {
			uc.logger.Warn("failed to decrement image count for category %s: %v", previousCategoryID, err)
		}
		if err := uc.categoryRepo.IncrementImageCount(newCategory.ID, 1); err != nil {
			uc.logger.Warn("failed to increment image count for category %s: %v", newCategory.ID, err)
		}
		return image, nil
	}

	if err := uc.imageRepo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes the remote asset first and treats its failure as fatal;
// unlike the category cascade there is nothing best-effort on this path.
func (uc *imageUseCase) Delete(id string) (*entity.ImageDeleteSummary, error) {
	image, err := uc.imageRepo.GetAnyByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.assetHost.Delete(image.AssetKey); err != nil {
		return nil, apperr.NewUpstream("delete", err)
	}

	if err := uc.imageRepo.Delete(id); err != nil {
		return nil, err
	}

	if image.IsActive {
		if err := uc.categoryRepo.IncrementImageCount(image.CategoryID, -1); err != nil {
			uc.logger.Warn("failed to decrement image count for category %s: %v", image.CategoryID, err)
		}
	}

	return &entity.ImageDeleteSummary{
		Title:    image.Title,
		AssetKey: image.AssetKey,
	}, nil
}

func (uc *imageUseCase) Featured(limit int) ([]*entity.Image, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return uc.imageRepo.Featured(limit)
}

func (uc *imageUseCase) Search(term string, opts entity.ImageListOptions) ([]*entity.Image, int64, int, int, error) {
	opts.Search = term
	return uc.List(opts)
}

func (uc *imageUseCase) Stats() (*entity.ImageStats, error) {
	return uc.imageRepo.Stats()
}

func validateImageMeta(meta ImageUploadMeta) error {
	title := strings.TrimSpace(meta.Title)
	if len(title) < 1 || len(title) > 100 {
		return apperr.NewValidation("title", "must be between 1 and 100 characters")
	}
	if len(strings.TrimSpace(meta.Description)) > 500 {
		return apperr.NewValidation("description", "must be at most 500 characters")
	}
	return validateTags(meta.Tags)
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if len(tag) > 30 {
			return apperr.NewValidation("tags", "each tag must be at most 30 characters")
		}
	}
	return nil
}

func fileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
