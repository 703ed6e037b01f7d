package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. Order items keep the unit price
// they were created with; a price change here never touches them.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product unless any order references it. The check
// runs before the delete so callers get a descriptive error instead of a
// foreign-key violation from the restricted constraint.
func (s *ProductService) DeleteProduct(id uint) error {
	count, err := s.repo.CountOrderItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("product %d is referenced by %d order item(s): %w", id, count, ErrProductOrdered)
	}
	return s.repo.Delete(id)
}
