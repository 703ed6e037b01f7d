package repositories

import (
	"storefront/internal/models"
)

// ReviewRepository defines the interface for product review data access.
type ReviewRepository interface {
	GetByProduct(productID uint) ([]models.Review, error)
	Create(review *models.Review) error
	Delete(id uint) error
}
