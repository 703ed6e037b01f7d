package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// PlaceOrder turns the cart into an order owned by the caller's customer
// profile. The caller must already have a profile; ordering never provisions
// one. Cart validation, item snapshotting and cart deletion happen inside one
// storage transaction, so a failure at any step leaves the cart untouched.
func (s *OrderService) PlaceOrder(cartID string, userID string) (*models.Order, error) {
	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.CreateFromCart(cartID, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order from cart %s: %w", cartID, err)
	}
	return order, nil
}

// GetOrders lists orders visible to the caller: everything for admins, only
// the caller's own orders otherwise.
func (s *OrderService) GetOrders(userID string, isAdmin bool) ([]models.Order, error) {
	if isAdmin {
		return s.orderRepo.GetAll()
	}
	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetAllByCustomer(customer.ID)
}

// GetOrderByID retrieves one order, applying the same visibility rule as
// GetOrders. A foreign order is reported as not found rather than forbidden,
// so callers cannot probe for order ids.
func (s *OrderService) GetOrderByID(id uint, userID string, isAdmin bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		customer, err := s.customerRepo.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if order.CustomerID != customer.ID {
			return nil, fmt.Errorf("order %d: %w", id, repositories.ErrOrderNotFound)
		}
	}
	return order, nil
}

// UpdatePaymentStatus sets the payment status of an order. This is the only
// mutation an order supports after placement.
func (s *OrderService) UpdatePaymentStatus(id uint, status models.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%q: %w", status, ErrInvalidPaymentStatus)
	}
	return s.orderRepo.UpdatePaymentStatus(id, status)
}
