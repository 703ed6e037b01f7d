package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store catalog.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Slug        string          `json:"slug" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Description string          `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"not null;type:decimal(10,2)"`
	Inventory   uint            `json:"inventory" gorm:"not null;default:0"`
	CategoryID  uint            `json:"category_id" gorm:"not null" validate:"required"`
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	LastUpdated time.Time       `json:"last_updated" gorm:"autoUpdateTime"`
}

// PriceWithTax returns the unit price including the flat 10% sales tax the
// store quotes alongside the raw price.
func (p *Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromFloat(1.1)).Round(2)
}
