package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// GetReviews lists the reviews of one product. The product must exist.
func (s *ReviewService) GetReviews(productID uint) ([]models.Review, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByProduct(productID)
}

// CreateReview attaches a new review to a product. The product must exist.
func (s *ReviewService) CreateReview(productID uint, review *models.Review) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	review.ProductID = productID
	return s.reviewRepo.Create(review)
}

// DeleteReview removes a review.
func (s *ReviewService) DeleteReview(id uint) error {
	return s.reviewRepo.Delete(id)
}
