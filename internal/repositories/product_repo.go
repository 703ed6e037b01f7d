package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	// CountOrderItems reports how many order lines reference the product.
	// Used by the delete guard.
	CountOrderItems(productID uint) (int64, error)
}
