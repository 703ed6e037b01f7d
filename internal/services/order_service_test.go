package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(customerID uint) ([]models.Order, error) {
	args := m.Called(customerID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateFromCart(cartID string, customerID uint) (*models.Order, error) {
	args := m.Called(cartID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdatePaymentStatus(id uint, status models.PaymentStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(userID string) (*models.Customer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	cartID := "a4c87e64-9e1a-4b1c-8a8b-0df0f2c7e9a1"
	customer := &models.Customer{ID: 7, UserID: "user-123"}
	expectedOrder := &models.Order{
		ID:            1,
		CustomerID:    7,
		PaymentStatus: models.PaymentPending,
		Items: []models.OrderItem{
			{OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(10.0)},
		},
	}

	// Test successful placement
	mockOrderRepo := new(MockOrderRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	service := services.NewOrderService(mockOrderRepo, mockCustomerRepo)
	mockCustomerRepo.On("GetByUserID", "user-123").Return(customer, nil).Once()
	mockOrderRepo.On("CreateFromCart", cartID, uint(7)).Return(expectedOrder, nil).Once()

	order, err := service.PlaceOrder(cartID, "user-123")
	assert.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
	mockOrderRepo.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)

	// Test caller without a customer profile. Fresh mocks, so the
	// not-called assertion cannot match calls from earlier sub-cases.
	mockOrderRepo = new(MockOrderRepository)
	mockCustomerRepo = new(MockCustomerRepository)
	service = services.NewOrderService(mockOrderRepo, mockCustomerRepo)
	mockCustomerRepo.On("GetByUserID", "user-456").Return(nil, fmt.Errorf("customer for user user-456: %w", repositories.ErrCustomerNotFound)).Once()
	order, err = service.PlaceOrder(cartID, "user-456")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrCustomerNotFound)
	mockOrderRepo.AssertNotCalled(t, "CreateFromCart", cartID, mock.Anything)
	mockCustomerRepo.AssertExpectations(t)

	// Test cart not found
	mockOrderRepo = new(MockOrderRepository)
	mockCustomerRepo = new(MockCustomerRepository)
	service = services.NewOrderService(mockOrderRepo, mockCustomerRepo)
	mockCustomerRepo.On("GetByUserID", "user-123").Return(customer, nil).Once()
	mockOrderRepo.On("CreateFromCart", cartID, uint(7)).Return(nil, fmt.Errorf("cart %s: %w", cartID, repositories.ErrCartNotFound)).Once()
	order, err = service.PlaceOrder(cartID, "user-123")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
	mockOrderRepo.AssertExpectations(t)

	// Test empty cart
	mockOrderRepo = new(MockOrderRepository)
	mockCustomerRepo = new(MockCustomerRepository)
	service = services.NewOrderService(mockOrderRepo, mockCustomerRepo)
	mockCustomerRepo.On("GetByUserID", "user-123").Return(customer, nil).Once()
	mockOrderRepo.On("CreateFromCart", cartID, uint(7)).Return(nil, fmt.Errorf("cart %s: %w", cartID, repositories.ErrEmptyCart)).Once()
	order, err = service.PlaceOrder(cartID, "user-123")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrEmptyCart)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_GetOrders(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	service := services.NewOrderService(mockOrderRepo, mockCustomerRepo)

	allOrders := []models.Order{
		{ID: 1, CustomerID: 7},
		{ID: 2, CustomerID: 8},
	}
	ownOrders := []models.Order{
		{ID: 1, CustomerID: 7},
	}

	// Admins see every order
	mockOrderRepo.On("GetAll").Return(allOrders, nil).Once()
	orders, err := service.GetOrders("admin-user", true)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	mockCustomerRepo.AssertNotCalled(t, "GetByUserID", mock.Anything)
	mockOrderRepo.AssertExpectations(t)

	// Regular users only see their own
	mockCustomerRepo.On("GetByUserID", "user-123").Return(&models.Customer{ID: 7, UserID: "user-123"}, nil).Once()
	mockOrderRepo.On("GetAllByCustomer", uint(7)).Return(ownOrders, nil).Once()
	orders, err = service.GetOrders("user-123", false)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, uint(7), orders[0].CustomerID)
	mockOrderRepo.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	service := services.NewOrderService(mockOrderRepo, mockCustomerRepo)

	order := &models.Order{ID: 1, CustomerID: 7}

	// Owner retrieves their own order
	mockOrderRepo.On("GetByID", uint(1)).Return(order, nil).Once()
	mockCustomerRepo.On("GetByUserID", "user-123").Return(&models.Customer{ID: 7, UserID: "user-123"}, nil).Once()
	got, err := service.GetOrderByID(1, "user-123", false)
	assert.NoError(t, err)
	assert.Equal(t, order, got)
	mockOrderRepo.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)

	// A foreign order reads as not found, never as forbidden
	mockOrderRepo.On("GetByID", uint(1)).Return(order, nil).Once()
	mockCustomerRepo.On("GetByUserID", "user-456").Return(&models.Customer{ID: 9, UserID: "user-456"}, nil).Once()
	got, err = service.GetOrderByID(1, "user-456", false)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	mockOrderRepo.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)

	// Admins bypass the ownership check
	mockOrderRepo.On("GetByID", uint(1)).Return(order, nil).Once()
	got, err = service.GetOrderByID(1, "admin-user", true)
	assert.NoError(t, err)
	assert.Equal(t, order, got)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	service := services.NewOrderService(mockOrderRepo, mockCustomerRepo)

	// Test successful update
	mockOrderRepo.On("UpdatePaymentStatus", uint(1), models.PaymentComplete).Return(nil).Once()
	err := service.UpdatePaymentStatus(1, models.PaymentComplete)
	assert.NoError(t, err)
	mockOrderRepo.AssertExpectations(t)

	// Test invalid status
	err = service.UpdatePaymentStatus(1, models.PaymentStatus("X"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidPaymentStatus)
	mockOrderRepo.AssertNotCalled(t, "UpdatePaymentStatus", uint(1), models.PaymentStatus("X"))

	// Test order not found
	mockOrderRepo.On("UpdatePaymentStatus", uint(99), models.PaymentFailed).Return(fmt.Errorf("order 99: %w", repositories.ErrOrderNotFound)).Once()
	err = service.UpdatePaymentStatus(99, models.PaymentFailed)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	mockOrderRepo.AssertExpectations(t)
}
