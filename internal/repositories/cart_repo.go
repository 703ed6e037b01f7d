package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	Create(cart *models.Cart) error
	// GetByID loads a cart with its items and their products.
	GetByID(id string) (*models.Cart, error)
	Delete(id string) error
	// AddItem upserts a cart line: an existing (cart, product) row has its
	// quantity incremented by quantity, otherwise a new row is inserted.
	AddItem(cartID string, productID uint, quantity uint) (*models.CartItem, error)
	UpdateItemQuantity(cartID string, itemID uint, quantity uint) (*models.CartItem, error)
	RemoveItem(cartID string, itemID uint) error
}
