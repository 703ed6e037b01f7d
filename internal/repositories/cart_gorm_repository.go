package repositories

import (
	"errors"
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create creates a new cart, assigning a random UUID token if none is set.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetByID retrieves a cart with its items and their products.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items.Product").First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart %s: %w", id, ErrCartNotFound)
		}
		return nil, fmt.Errorf("failed to get cart by ID %s: %w", id, err)
	}
	return &cart, nil
}

// Delete removes a cart and, in the same transaction, its items.
func (r *GORMCartRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Cart{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete cart: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("cart %s for deletion: %w", id, ErrCartNotFound)
		}
		if err := tx.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		return nil
	})
}

// AddItem upserts a cart line. An existing (cart, product) row has its
// quantity incremented atomically; otherwise a new row is inserted.
func (r *GORMCartRepository) AddItem(cartID string, productID uint, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Cart{}, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart %s: %w", cartID, ErrCartNotFound)
			}
			return fmt.Errorf("failed to get cart %s: %w", cartID, err)
		}

		err := tx.First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
		switch {
		case err == nil:
			// Increment in SQL so concurrent adds do not lose updates.
			res := tx.Model(&item).Update("quantity", gorm.Expr("quantity + ?", quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to increment cart item quantity: %w", res.Error)
			}
			item.Quantity += quantity
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("failed to look up cart item: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := r.db.Preload("Product").First(&item, "id = ?", item.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart item: %w", err)
	}
	return &item, nil
}

// UpdateItemQuantity sets the quantity of one cart line.
func (r *GORMCartRepository) UpdateItemQuantity(cartID string, itemID uint, quantity uint) (*models.CartItem, error) {
	res := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("cart item %d in cart %s: %w", itemID, cartID, ErrCartItemNotFound)
	}
	var item models.CartItem
	if err := r.db.Preload("Product").First(&item, "id = ?", itemID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes one cart line.
func (r *GORMCartRepository) RemoveItem(cartID string, itemID uint) error {
	res := r.db.Delete(&models.CartItem{}, "id = ? AND cart_id = ?", itemID, cartID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %d in cart %s: %w", itemID, cartID, ErrCartItemNotFound)
	}
	return nil
}
