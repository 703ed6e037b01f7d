package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic related to shopping carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CreateCart creates a new empty cart identified by a random token.
func (s *CartService) CreateCart() (*models.Cart, error) {
	cart := &models.Cart{}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart retrieves a cart with its items and products.
func (s *CartService) GetCart(id string) (*models.Cart, error) {
	return s.cartRepo.GetByID(id)
}

// DeleteCart discards a cart and its items.
func (s *CartService) DeleteCart(id string) error {
	return s.cartRepo.Delete(id)
}

// AddItem adds quantity of a product to the cart. The product must exist.
// Adding a product already in the cart increments the existing line instead
// of creating a second one.
func (s *CartService) AddItem(cartID string, productID uint, quantity uint) (*models.CartItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.cartRepo.AddItem(cartID, productID, quantity)
}

// UpdateItemQuantity replaces the quantity of one cart line.
func (s *CartService) UpdateItemQuantity(cartID string, itemID uint, quantity uint) (*models.CartItem, error) {
	return s.cartRepo.UpdateItemQuantity(cartID, itemID, quantity)
}

// RemoveItem removes one line from the cart.
func (s *CartService) RemoveItem(cartID string, itemID uint) error {
	return s.cartRepo.RemoveItem(cartID, itemID)
}
