package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how far an order's payment has progressed.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "P"
	PaymentComplete PaymentStatus = "C"
	PaymentFailed   PaymentStatus = "F"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentComplete, PaymentFailed:
		return true
	}
	return false
}

// Order is the immutable record of a placed purchase. Only the payment
// status may change after creation.
type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    uint          `json:"customer" gorm:"not null"`
	Customer      *Customer     `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(1);default:'P'"`
	PlacedAt      time.Time     `json:"placed_at" gorm:"autoCreateTime"`
	Items         []OrderItem   `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

// OrderItem is one line of an order. UnitPrice is copied from the product at
// placement time and never recomputed, so later price changes do not alter
// historical orders.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Product   *Product        `json:"product,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  uint            `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"not null;type:decimal(10,2)"`
}
