package handlers

import (
	"errors"
	"log"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Post("/", h.HandleCreateCart)
	cartRoutes.Get("/:id", h.HandleGetCart)
	cartRoutes.Delete("/:id", h.HandleDeleteCart)
	cartRoutes.Post("/:id/items", h.HandleAddItem)
	cartRoutes.Patch("/:id/items/:itemID", h.HandleUpdateItemQuantity)
	cartRoutes.Delete("/:id/items/:itemID", h.HandleRemoveItem)
}

// cartItemResponse is the external representation of one cart line.
type cartItemResponse struct {
	models.CartItem
	TotalPrice decimal.Decimal `json:"total_price"`
}

// cartResponse is the external representation of a cart with totals.
type cartResponse struct {
	ID         string             `json:"id"`
	Items      []cartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func newCartResponse(cart *models.Cart) cartResponse {
	resp := cartResponse{
		ID:         cart.ID,
		Items:      make([]cartItemResponse, 0, len(cart.Items)),
		TotalPrice: cart.TotalPrice(),
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, cartItemResponse{CartItem: item, TotalPrice: item.TotalPrice()})
	}
	return resp
}

// HandleCreateCart creates a new empty cart and returns its token.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	cart, err := h.service.CreateCart()
	if err != nil {
		log.Printf("Error creating cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(newCartResponse(cart))
}

// HandleGetCart retrieves a cart with its items and totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(c.Params("id"))
	if err != nil {
		log.Printf("Error getting cart %s: %v", c.Params("id"), err)
		if errors.Is(err, repositories.ErrCartNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(newCartResponse(cart))
}

// HandleDeleteCart discards a cart.
func (h *CartHandler) HandleDeleteCart(c *fiber.Ctx) error {
	if err := h.service.DeleteCart(c.Params("id")); err != nil {
		log.Printf("Error deleting cart %s: %v", c.Params("id"), err)
		if errors.Is(err, repositories.ErrCartNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart deleted successfully",
	})
}

// AddCartItemRequest is the request body for adding a product to a cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  uint `json:"quantity" validate:"required,min=1"`
}

// HandleAddItem upserts a cart line for the given product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-cart-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and a quantity of at least 1 are required",
			"error":   err.Error(),
		})
	}

	item, err := h.service.AddItem(c.Params("id"), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %d to cart %s: %v", req.ProductID, c.Params("id"), err)
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "This product was not found in our database",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrCartNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartItemResponse{CartItem: *item, TotalPrice: item.TotalPrice()})
}

// UpdateCartItemRequest is the request body for changing a line's quantity.
type UpdateCartItemRequest struct {
	Quantity uint `json:"quantity" validate:"required,min=1"`
}

// HandleUpdateItemQuantity replaces the quantity of one cart line.
func (h *CartHandler) HandleUpdateItemQuantity(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("itemID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart item ID must be a number",
		})
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update-cart-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A quantity of at least 1 is required",
			"error":   err.Error(),
		})
	}

	item, err := h.service.UpdateItemQuantity(c.Params("id"), uint(itemID), req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item %d in cart %s: %v", itemID, c.Params("id"), err)
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart item",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartItemResponse{CartItem: *item, TotalPrice: item.TotalPrice()})
}

// HandleRemoveItem removes one line from a cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("itemID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart item ID must be a number",
		})
	}

	if err := h.service.RemoveItem(c.Params("id"), uint(itemID)); err != nil {
		log.Printf("Error removing cart item %d from cart %s: %v", itemID, c.Params("id"), err)
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove cart item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart item removed successfully",
	})
}
