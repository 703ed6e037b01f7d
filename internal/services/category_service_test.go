package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountProducts(categoryID uint) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCategoryService_GetAllCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	expected := []models.Category{
		{ID: 1, Title: "Books", ProductCount: 3},
		{ID: 2, Title: "Toys", ProductCount: 0},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	categories, err := service.GetAllCategories()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	// Test successful deletion of an empty category
	mockRepo.On("CountProducts", uint(2)).Return(int64(0), nil).Once()
	mockRepo.On("Delete", uint(2)).Return(nil).Once()
	err := service.DeleteCategory(2)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion refused while products are assigned
	mockRepo.On("CountProducts", uint(1)).Return(int64(3), nil).Once()
	err = service.DeleteCategory(1)
	assert.Error(t, err)
	assert.ErrorIs(t, err, services.ErrCategoryInUse)
	mockRepo.AssertNotCalled(t, "Delete", uint(1))
	mockRepo.AssertExpectations(t)

	// Test deletion failure (category not found)
	mockRepo.On("CountProducts", uint(99)).Return(int64(0), nil).Once()
	mockRepo.On("Delete", uint(99)).Return(fmt.Errorf("category 99 for deletion: %w", repositories.ErrCategoryNotFound)).Once()
	err = service.DeleteCategory(99)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrCategoryNotFound)
	mockRepo.AssertExpectations(t)
}
