package repositories

import (
	"storefront/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	// CountProducts reports how many products are assigned to the category.
	// Used by the delete guard.
	CountProducts(categoryID uint) (int64, error)
}
