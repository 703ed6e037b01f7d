package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CustomerService handles business logic related to customer profiles.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all customer profiles.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetProfile retrieves the customer profile of one user account.
func (s *CustomerService) GetProfile(userID string) (*models.Customer, error) {
	return s.repo.GetByUserID(userID)
}

// UpdateProfile updates the caller's own profile fields. The membership tier
// is controlled administratively and cannot be changed here.
func (s *CustomerService) UpdateProfile(userID string, update *models.Customer) (*models.Customer, error) {
	customer, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	customer.FirstName = update.FirstName
	customer.LastName = update.LastName
	customer.Phone = update.Phone
	customer.BirthDate = update.BirthDate
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetMembership changes a customer's membership tier (admin operation).
func (s *CustomerService) SetMembership(userID string, membership models.Membership) (*models.Customer, error) {
	if !membership.Valid() {
		return nil, fmt.Errorf("%q: %w", membership, ErrInvalidMembership)
	}
	customer, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	customer.Membership = membership
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
