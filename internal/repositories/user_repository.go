package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	// CreateWithProfile creates the user account and its customer profile in
	// one transaction, so registration never leaves an account without a
	// profile.
	CreateWithProfile(user *models.User, profile *models.Customer) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
