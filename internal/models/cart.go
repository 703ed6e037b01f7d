package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is an ephemeral, pre-purchase collection of product selections.
// It is identified by an opaque UUID token and destroyed by order placement.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TotalPrice sums quantity * current unit price over all items. Items whose
// product is not loaded contribute nothing.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if item.Product != nil {
			total = total.Add(item.Product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return total
}

// CartItem is one product selection within a cart. A cart holds at most one
// row per product; adding the same product again increments the quantity.
type CartItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	CartID    string   `json:"cart_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_product"`
	ProductID uint     `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   *Product `json:"product,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  uint     `json:"quantity" gorm:"not null" validate:"required,min=1"`
}

// TotalPrice is quantity * the product's current unit price.
func (i *CartItem) TotalPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
