package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customer profiles.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", middleware.AdminRequired(), h.HandleGetCustomers)
	customerRoutes.Get("/me", h.HandleGetProfile)
	customerRoutes.Put("/me", h.HandleUpdateProfile)
	customerRoutes.Patch("/:userID/membership", middleware.AdminRequired(), h.HandleSetMembership)
}

// HandleGetCustomers lists all customer profiles (admin only).
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customers",
			"error":   err.Error(),
		})
	}
	return c.JSON(customers)
}

// HandleGetProfile returns the caller's own customer profile.
func (h *CustomerHandler) HandleGetProfile(c *fiber.Ctx) error {
	customer, err := h.service.GetProfile(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting customer profile: %v", err)
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No customer profile exists for this account",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customer profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(customer)
}

// HandleUpdateProfile updates the caller's own customer profile.
func (h *CustomerHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var update models.Customer
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing update-profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.StructPartial(update, "FirstName", "LastName", "Phone"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	customer, err := h.service.UpdateProfile(middleware.UserID(c), &update)
	if err != nil {
		log.Printf("Error updating customer profile: %v", err)
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No customer profile exists for this account",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update customer profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(customer)
}

// SetMembershipRequest is the request body for a membership tier change.
type SetMembershipRequest struct {
	Membership models.Membership `json:"membership" validate:"required,oneof=B S G"`
}

// HandleSetMembership changes a customer's membership tier (admin only).
func (h *CustomerHandler) HandleSetMembership(c *fiber.Ctx) error {
	var req SetMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing set-membership request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "membership must be one of B, S, G",
			"error":   err.Error(),
		})
	}

	customer, err := h.service.SetMembership(c.Params("userID"), req.Membership)
	if err != nil {
		log.Printf("Error setting membership: %v", err)
		switch {
		case errors.Is(err, repositories.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
			})
		case errors.Is(err, services.ErrInvalidMembership):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid membership tier",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update membership",
			"error":   err.Error(),
		})
	}
	return c.JSON(customer)
}
