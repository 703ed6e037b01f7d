package repositories_test

import (
	"path/filepath"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh SQLite database in a per-test temp directory.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

// seedCustomer inserts a user with a customer profile and returns the customer.
func seedCustomer(t *testing.T, db *gorm.DB, username string) *models.Customer {
	t.Helper()
	user := &models.User{ID: uuid.New().String(), Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	customer := &models.Customer{UserID: user.ID, FirstName: "Test", LastName: "Customer"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// seedProduct inserts a category (once per title) and a product priced at price.
func seedProduct(t *testing.T, db *gorm.DB, title string, price string) *models.Product {
	t.Helper()
	category := &models.Category{Title: "Category for " + title}
	require.NoError(t, db.Create(category).Error)
	unitPrice, err := decimal.NewFromString(price)
	require.NoError(t, err)
	product := &models.Product{
		Title:      title,
		Slug:       title,
		UnitPrice:  unitPrice,
		Inventory:  100,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestGORMOrderRepository_CreateFromCart(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := seedCustomer(t, db, "buyer")
	p1 := seedProduct(t, db, "Widget", "10.00")
	p2 := seedProduct(t, db, "Gadget", "5.00")

	cart := &models.Cart{}
	require.NoError(t, cartRepo.Create(cart))
	_, err := cartRepo.AddItem(cart.ID, p1.ID, 2)
	require.NoError(t, err)
	_, err = cartRepo.AddItem(cart.ID, p2.ID, 1)
	require.NoError(t, err)

	order, err := orderRepo.CreateFromCart(cart.ID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	// Each order item snapshots the product's unit price at placement time.
	byProduct := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, uint(2), byProduct[p1.ID].Quantity)
	assert.True(t, byProduct[p1.ID].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, uint(1), byProduct[p2.ID].Quantity)
	assert.True(t, byProduct[p2.ID].UnitPrice.Equal(decimal.RequireFromString("5.00")))

	// The cart and its items are gone once the order exists.
	_, err = cartRepo.GetByID(cart.ID)
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
	var leftover int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&leftover).Error)
	assert.Zero(t, leftover)

	// Placing the same cart again fails; the cart was consumed.
	_, err = orderRepo.CreateFromCart(cart.ID, customer.ID)
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}

func TestGORMOrderRepository_CreateFromCart_EmptyCart(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := seedCustomer(t, db, "buyer")

	cart := &models.Cart{}
	require.NoError(t, cartRepo.Create(cart))

	_, err := orderRepo.CreateFromCart(cart.ID, customer.ID)
	assert.ErrorIs(t, err, repositories.ErrEmptyCart)

	// A failed placement leaves the cart in place.
	_, err = cartRepo.GetByID(cart.ID)
	assert.NoError(t, err)
}

func TestGORMOrderRepository_CreateFromCart_MissingCart(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := seedCustomer(t, db, "buyer")

	_, err := orderRepo.CreateFromCart("00000000-0000-0000-0000-000000000000", customer.ID)
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}

func TestGORMOrderRepository_SnapshotSurvivesPriceChange(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	customer := seedCustomer(t, db, "buyer")
	product := seedProduct(t, db, "Widget", "10.00")

	cart := &models.Cart{}
	require.NoError(t, cartRepo.Create(cart))
	_, err := cartRepo.AddItem(cart.ID, product.ID, 1)
	require.NoError(t, err)

	order, err := orderRepo.CreateFromCart(cart.ID, customer.ID)
	require.NoError(t, err)

	// Raise the product's price after placement.
	product.UnitPrice = decimal.RequireFromString("99.99")
	require.NoError(t, productRepo.Update(product))

	reloaded, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestGORMOrderRepository_UpdatePaymentStatus(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := seedCustomer(t, db, "buyer")
	product := seedProduct(t, db, "Widget", "10.00")

	cart := &models.Cart{}
	require.NoError(t, cartRepo.Create(cart))
	_, err := cartRepo.AddItem(cart.ID, product.ID, 1)
	require.NoError(t, err)
	order, err := orderRepo.CreateFromCart(cart.ID, customer.ID)
	require.NoError(t, err)

	require.NoError(t, orderRepo.UpdatePaymentStatus(order.ID, models.PaymentComplete))
	reloaded, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentComplete, reloaded.PaymentStatus)

	err = orderRepo.UpdatePaymentStatus(order.ID+1000, models.PaymentFailed)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMCartRepository_AddItemUpserts(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, db, "Widget", "10.00")

	cart := &models.Cart{}
	require.NoError(t, cartRepo.Create(cart))

	first, err := cartRepo.AddItem(cart.ID, product.ID, 1)
	require.NoError(t, err)
	second, err := cartRepo.AddItem(cart.ID, product.ID, 2)
	require.NoError(t, err)

	// Same line, incremented quantity, never a duplicate row.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, uint(3), second.Quantity)

	loaded, err := cartRepo.GetByID(cart.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, uint(3), loaded.Items[0].Quantity)
}

func TestGORMCartRepository_AddItemMissingCart(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, db, "Widget", "10.00")

	_, err := cartRepo.AddItem("00000000-0000-0000-0000-000000000000", product.ID, 1)
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}
