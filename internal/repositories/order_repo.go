package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllByCustomer(customerID uint) ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// CreateFromCart atomically materializes an order for the customer from
	// the cart's items, snapshotting each product's current unit price, and
	// deletes the cart. Either everything becomes visible together or the
	// cart is left untouched.
	CreateFromCart(cartID string, customerID uint) (*models.Order, error)
	UpdatePaymentStatus(id uint, status models.PaymentStatus) error
	// Deletion of orders is intentionally absent; orders are immutable history.
}
