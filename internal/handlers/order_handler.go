package handlers

import (
	"errors"
	"log"
	"strconv"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	// Payment status is mutated by back-office staff only.
	orderRoutes.Patch("/:id", middleware.AdminRequired(), h.HandleUpdatePaymentStatus)
}

// PlaceOrderRequest is the request body for placing an order from a cart.
type PlaceOrderRequest struct {
	CartID string `json:"cart_id" validate:"required,uuid"`
}

// HandlePlaceOrder materializes an order from the caller's cart.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid cart_id is required",
			"error":   err.Error(),
		})
	}

	order, err := h.service.PlaceOrder(req.CartID, middleware.UserID(c))
	if err != nil {
		log.Printf("Error placing order from cart %s: %v", req.CartID, err)
		switch {
		case errors.Is(err, repositories.ErrCartNotFound),
			errors.Is(err, repositories.ErrEmptyCart),
			errors.Is(err, repositories.ErrCustomerNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order placement failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders lists the caller's orders, or every order for admins.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders(middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "No customer profile exists for this account",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order visible to the caller.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order ID must be a number",
		})
	}

	order, err := h.service.GetOrderByID(uint(id), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		log.Printf("Error getting order by ID %d: %v", id, err)
		if errors.Is(err, repositories.ErrOrderNotFound) || errors.Is(err, repositories.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// UpdatePaymentStatusRequest is the request body for a payment status change.
type UpdatePaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" validate:"required,oneof=P C F"`
}

// HandleUpdatePaymentStatus updates the payment status of an existing order.
func (h *OrderHandler) HandleUpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order ID must be a number",
		})
	}

	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for payment status update",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "payment_status must be one of P, C, F",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdatePaymentStatus(uint(id), req.PaymentStatus); err != nil {
		log.Printf("Error updating payment status for order %d: %v", id, err)
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		case errors.Is(err, services.ErrInvalidPaymentStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid payment status",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update payment status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Payment status updated successfully",
	})
}
