package models

import "time"

// Membership is the loyalty tier of a customer.
type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

// Valid reports whether m is one of the known membership tiers.
func (m Membership) Valid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

// Customer is the store-facing profile behind a user account.
// Exactly one customer exists per user.
type Customer struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36);not null"`
	FirstName  string     `json:"first_name" gorm:"type:varchar(255)" validate:"required,max=255"`
	LastName   string     `json:"last_name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Phone      string     `json:"phone" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	BirthDate  *time.Time `json:"birth_date"`
	Membership Membership `json:"membership" gorm:"type:varchar(1);default:'B'" validate:"omitempty,oneof=B S G"`
}
