package repositories

import (
	"errors"
	"fmt"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items and products preloaded.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items.Product").Order("placed_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetAllByCustomer retrieves the orders belonging to one customer.
func (r *GORMOrderRepository) GetAllByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.Product").
		Where("customer_id = ?", customerID).
		Order("placed_at").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items and products preloaded.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items.Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// CreateFromCart materializes an order from the cart inside one transaction:
// the cart items are read with their products, one order item is written per
// cart item with the product's current unit price frozen in, and the cart is
// deleted. Deleting the cart doubles as the serialization point for racing
// placements: the delete must remove exactly one row, so the second of two
// concurrent placements finds the cart already gone, fails with
// ErrCartNotFound, and its whole transaction rolls back.
func (r *GORMOrderRepository) CreateFromCart(cartID string, customerID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		err := tx.Preload("Product").Where("cart_id = ?", cartID).Find(&cartItems).Error
		if err != nil {
			return fmt.Errorf("failed to load cart items for cart %s: %w", cartID, err)
		}
		if len(cartItems) == 0 {
			// Distinguish a missing cart from an empty one.
			var cart models.Cart
			if err := tx.First(&cart, "id = ?", cartID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("cart %s: %w", cartID, ErrCartNotFound)
				}
				return fmt.Errorf("failed to get cart %s: %w", cartID, err)
			}
			return fmt.Errorf("cart %s: %w", cartID, ErrEmptyCart)
		}

		order = models.Order{
			CustomerID:    customerID,
			PaymentStatus: models.PaymentPending,
		}
		for _, item := range cartItems {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.UnitPrice,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items for cart %s: %w", cartID, err)
		}
		res := tx.Delete(&models.Cart{}, "id = ?", cartID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete cart %s: %w", cartID, res.Error)
		}
		if res.RowsAffected == 0 {
			// A concurrent placement consumed the cart first.
			return fmt.Errorf("cart %s: %w", cartID, ErrCartNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdatePaymentStatus sets the payment status of an existing order.
func (r *GORMOrderRepository) UpdatePaymentStatus(id uint, status models.PaymentStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d for payment status update: %w", id, ErrOrderNotFound)
	}
	return nil
}
