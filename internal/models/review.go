package models

import "time"

// Review is a customer-submitted rating of a product. Reviews are removed
// together with their product.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null"`
	Product   *Product  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Rating    int       `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:text" validate:"omitempty,max=2000"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}
