package usecase

import (
	"pixvault/internal/entity"
	"pixvault/internal/repo/persistent"
	"pixvault/pkg/assethost"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of persistent.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*entity.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Search(term string) ([]*entity.Category, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) NameExists(name string, excludeID string) (bool, error) {
	args := m.Called(name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) IncrementImageCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockCategoryRepository) Stats() (*entity.CategoryStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CategoryStats), args.Error(1)
}

func (m *MockCategoryRepository) RecountImageCounts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.CategoryRepository = (*MockCategoryRepository)(nil)

// MockImageRepository is a mock implementation of persistent.ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(image *entity.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageRepository) GetByID(id string) (*entity.Image, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageRepository) GetAnyByID(id string) (*entity.Image, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageRepository) List(opts entity.ImageListOptions) ([]*entity.Image, int64, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Image), args.Get(1).(int64), args.Error(2)
}

func (m *MockImageRepository) ListByCategoryID(categoryID string) ([]*entity.Image, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Image), args.Error(1)
}

func (m *MockImageRepository) ListRecentByCategoryID(categoryID string, limit int) ([]*entity.Image, error) {
	args := m.Called(categoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Image), args.Error(1)
}

func (m *MockImageRepository) Featured(limit int) ([]*entity.Image, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Image), args.Error(1)
}

func (m *MockImageRepository) Update(image *entity.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteByCategoryID(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockImageRepository) Stats() (*entity.ImageStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ImageStats), args.Error(1)
}

var _ persistent.ImageRepository = (*MockImageRepository)(nil)

// MockAssetHost is a mock implementation of AssetHost
type MockAssetHost struct {
	mock.Mock
}

func (m *MockAssetHost) Upload(key string, data []byte, contentType string) (*assethost.UploadResult, error) {
	args := m.Called(key, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assethost.UploadResult), args.Error(1)
}

func (m *MockAssetHost) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockAssetHost) DeleteFolder(prefix string) error {
	args := m.Called(prefix)
	return args.Error(0)
}

func (m *MockAssetHost) ThumbnailURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

var _ AssetHost = (*MockAssetHost)(nil)

// MockCategoryUseCase is a mock implementation of CategoryUseCase
type MockCategoryUseCase struct {
	mock.Mock
}

func (m *MockCategoryUseCase) Create(name, description string) (*entity.Category, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) GetByName(name string) (*entity.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Update(id string, name, description *string) (*entity.Category, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Delete(id string) (*entity.CategoryDeleteSummary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CategoryDeleteSummary), args.Error(1)
}

func (m *MockCategoryUseCase) Search(term string) ([]*entity.Category, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Stats() (*entity.CategoryStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CategoryStats), args.Error(1)
}

var _ CategoryUseCase = (*MockCategoryUseCase)(nil)
