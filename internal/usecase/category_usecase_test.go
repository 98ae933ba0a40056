package usecase

import (
	"errors"
	"testing"

	"pixvault/internal/entity"
	"pixvault/pkg/apperr"
	"pixvault/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryUseCase(categoryRepo *MockCategoryRepository, imageRepo *MockImageRepository, assetHost *MockAssetHost) CategoryUseCase {
	return NewCategoryUseCase(categoryRepo, imageRepo, assetHost, logger.New())
}

func TestCreateCategory_DerivesSlug(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	categoryRepo.On("NameExists", "grand hall #1", "").Return(false, nil)
	categoryRepo.On("Create", mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := uc.Create("  Grand Hall #1  ", "")
	require.NoError(t, err)
	assert.Equal(t, "grand hall #1", category.Name)
	assert.Equal(t, "grand-hall-1", category.Slug)
	assert.True(t, category.IsActive)
	assert.Equal(t, 0, category.ImageCount)

	categoryRepo.AssertExpectations(t)
}

func TestCreateCategory_ConflictOnCaseVariant(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	// "Outdoor Venues" and " outdoor venues " normalize to the same name
	categoryRepo.On("NameExists", "outdoor venues", "").Return(true, nil)

	_, err := uc.Create(" Outdoor Venues ", "")
	require.Error(t, err)

	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict))
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCategory_NameTooShort(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	_, err := uc.Create("a", "")
	require.Error(t, err)

	var validation *apperr.ValidationError
	assert.True(t, errors.As(err, &validation))
	categoryRepo.AssertNotCalled(t, "NameExists", mock.Anything, mock.Anything)
}

func TestCreateCategory_DescriptionTooLong(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}

	_, err := uc.Create("venues", string(long))
	require.Error(t, err)

	var validation *apperr.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestUpdateCategory_RenameRecomputesSlug(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	existing := &entity.Category{ID: "cat-1", Name: "old name", Slug: "old-name", IsActive: true}
	categoryRepo.On("GetByID", "cat-1").Return(existing, nil)
	categoryRepo.On("NameExists", "grand hall #1", "cat-1").Return(false, nil)
	categoryRepo.On("Update", mock.AnythingOfType("*entity.Category")).Return(nil)

	newName := "Grand Hall #1"
	category, err := uc.Update("cat-1", &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "grand hall #1", category.Name)
	assert.Equal(t, "grand-hall-1", category.Slug)
}

func TestUpdateCategory_NameCollision(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	existing := &entity.Category{ID: "cat-1", Name: "old name", Slug: "old-name"}
	categoryRepo.On("GetByID", "cat-1").Return(existing, nil)
	categoryRepo.On("NameExists", "taken", "cat-1").Return(true, nil)

	newName := "Taken"
	_, err := uc.Update("cat-1", &newName, nil)

	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict))
	categoryRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	categoryRepo.On("GetByID", "missing").Return(nil, apperr.NewNotFound("category"))

	newName := "anything"
	_, err := uc.Update("missing", &newName, nil)

	var notFound *apperr.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestDeleteCategory_CascadeDeletesEverything(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	imageRepo := new(MockImageRepository)
	assetHost := new(MockAssetHost)
	uc := newCategoryUseCase(categoryRepo, imageRepo, assetHost)

	category := &entity.Category{ID: "cat-1", Name: "outdoor venues", Slug: "outdoor-venues"}
	images := []*entity.Image{
		{ID: "img-1", AssetKey: "gallery/outdoor-venues/a.jpg"},
		{ID: "img-2", AssetKey: "gallery/outdoor-venues/b.jpg"},
		{ID: "img-3", AssetKey: "gallery/outdoor-venues/c.jpg"},
	}

	categoryRepo.On("GetByID", "cat-1").Return(category, nil)
	imageRepo.On("ListByCategoryID", "cat-1").Return(images, nil)
	assetHost.On("Delete", "gallery/outdoor-venues/a.jpg").Return(nil)
	// One remote failure must not abort the cascade
	assetHost.On("Delete", "gallery/outdoor-venues/b.jpg").Return(errors.New("remote unavailable"))
	assetHost.On("Delete", "gallery/outdoor-venues/c.jpg").Return(nil)
	imageRepo.On("DeleteByCategoryID", "cat-1").Return(int64(3), nil)
	categoryRepo.On("Delete", "cat-1").Return(nil)
	assetHost.On("DeleteFolder", "gallery/outdoor-venues").Return(nil)

	summary, err := uc.Delete("cat-1")
	require.NoError(t, err)
	assert.Equal(t, "outdoor venues", summary.Category)
	assert.Equal(t, 3, summary.DeletedImagesCount)

	// All three remote delete attempts were issued regardless of outcome
	assetHost.AssertNumberOfCalls(t, "Delete", 3)
	categoryRepo.AssertExpectations(t)
	imageRepo.AssertExpectations(t)
	assetHost.AssertExpectations(t)
}

func TestDeleteCategory_FolderCleanupFailureIsNonFatal(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	imageRepo := new(MockImageRepository)
	assetHost := new(MockAssetHost)
	uc := newCategoryUseCase(categoryRepo, imageRepo, assetHost)

	category := &entity.Category{ID: "cat-1", Name: "empty", Slug: "empty"}
	categoryRepo.On("GetByID", "cat-1").Return(category, nil)
	imageRepo.On("ListByCategoryID", "cat-1").Return([]*entity.Image{}, nil)
	imageRepo.On("DeleteByCategoryID", "cat-1").Return(int64(0), nil)
	categoryRepo.On("Delete", "cat-1").Return(nil)
	assetHost.On("DeleteFolder", "gallery/empty").Return(errors.New("remote unavailable"))

	summary, err := uc.Delete("cat-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.DeletedImagesCount)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	imageRepo := new(MockImageRepository)
	uc := newCategoryUseCase(categoryRepo, imageRepo, new(MockAssetHost))

	categoryRepo.On("GetByID", "missing").Return(nil, apperr.NewNotFound("category"))

	_, err := uc.Delete("missing")

	var notFound *apperr.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	imageRepo.AssertNotCalled(t, "ListByCategoryID", mock.Anything)
}

func TestDeleteCategory_LocalBulkDeleteFailureAborts(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	imageRepo := new(MockImageRepository)
	assetHost := new(MockAssetHost)
	uc := newCategoryUseCase(categoryRepo, imageRepo, assetHost)

	category := &entity.Category{ID: "cat-1", Name: "venues", Slug: "venues"}
	categoryRepo.On("GetByID", "cat-1").Return(category, nil)
	imageRepo.On("ListByCategoryID", "cat-1").Return([]*entity.Image{}, nil)
	imageRepo.On("DeleteByCategoryID", "cat-1").Return(int64(0), errors.New("db down"))

	_, err := uc.Delete("cat-1")
	require.Error(t, err)
	// The category row must not be deleted while image rows may remain
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCategoryStats_EmptyReturnsZeros(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := newCategoryUseCase(categoryRepo, new(MockImageRepository), new(MockAssetHost))

	categoryRepo.On("Stats").Return(&entity.CategoryStats{}, nil)

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalCategories)
	assert.Equal(t, int64(0), stats.TotalImages)
	assert.Equal(t, float64(0), stats.AvgImageCount)
}
