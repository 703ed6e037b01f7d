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

// ReviewHandler handles HTTP requests for product reviews. Review routes are
// nested under products since a review only exists in the context of one.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/products/:productID/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Delete("/:id", middleware.AdminRequired(), h.HandleDeleteReview)
}

// HandleGetReviews lists the reviews of one product.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(c.Params("productID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a number",
		})
	}

	reviews, err := h.service.GetReviews(uint(productID))
	if err != nil {
		log.Printf("Error getting reviews for product %d: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview attaches a new review to a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(c.Params("productID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a number",
		})
	}

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing create-review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.StructPartial(review, "Name", "Rating", "Comment"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateReview(uint(productID), &review); err != nil {
		log.Printf("Error creating review for product %d: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleDeleteReview removes a review (admin only).
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Review ID must be a number",
		})
	}

	if err := h.service.DeleteReview(uint(id)); err != nil {
		log.Printf("Error deleting review %d: %v", id, err)
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete review",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
