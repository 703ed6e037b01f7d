package models

// Category groups products. Deleting a category with products is refused.
type Category struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Title             string `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	FeaturedProductID *uint  `json:"featured_product_id" gorm:"constraint:OnDelete:SET NULL"`

	// ProductCount is filled by queries that annotate categories with the
	// number of products assigned to them. It is not a column.
	ProductCount int64 `json:"product_count" gorm:"-"`
}
