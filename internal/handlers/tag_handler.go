package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TagHandler handles HTTP requests for tags and tag attachments.
type TagHandler struct {
	service  *services.TagService
	validate *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tag routes with the Fiber app.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleGetTags)
	tagRoutes.Post("/", middleware.AdminRequired(), h.HandleCreateTag)
	tagRoutes.Delete("/:id", middleware.AdminRequired(), h.HandleDeleteTag)
	tagRoutes.Post("/:id/items", middleware.AdminRequired(), h.HandleTagEntity)
	tagRoutes.Delete("/:id/items", middleware.AdminRequired(), h.HandleUntagEntity)
	// Listing an entity's tags lives under the entity's kind.
	router.Get("/:kind/:entityID/tags", h.HandleGetTagsFor)
}

// HandleGetTags retrieves all tags.
func (h *TagHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.service.GetAllTags()
	if err != nil {
		log.Printf("Error getting all tags: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tags",
			"error":   err.Error(),
		})
	}
	return c.JSON(tags)
}

// HandleCreateTag creates a new tag.
func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var tag models.Tag
	if err := c.BodyParser(&tag); err != nil {
		log.Printf("Error parsing create-tag request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(tag); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateTag(&tag); err != nil {
		log.Printf("Error creating tag: %v", err)
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A tag with this label already exists",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create tag",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// HandleDeleteTag removes a tag and all its attachments.
func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tag ID must be a number",
		})
	}

	if err := h.service.DeleteTag(uint(id)); err != nil {
		log.Printf("Error deleting tag %d: %v", id, err)
		if errors.Is(err, repositories.ErrTagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tag not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete tag",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Tag deleted successfully",
	})
}

// TagEntityRequest is the request body for attaching or detaching a tag.
type TagEntityRequest struct {
	EntityKind models.EntityKind `json:"entity_kind" validate:"required,oneof=product category"`
	EntityID   uint              `json:"entity_id" validate:"required"`
}

// HandleTagEntity attaches a tag to an entity.
func (h *TagHandler) HandleTagEntity(c *fiber.Ctx) error {
	tagID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tag ID must be a number",
		})
	}

	var req TagEntityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing tag-entity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "entity_kind (product or category) and entity_id are required",
			"error":   err.Error(),
		})
	}

	item, err := h.service.TagEntity(uint(tagID), req.EntityKind, req.EntityID)
	if err != nil {
		log.Printf("Error tagging %s %d with tag %d: %v", req.EntityKind, req.EntityID, tagID, err)
		switch {
		case errors.Is(err, repositories.ErrTagNotFound),
			errors.Is(err, repositories.ErrProductNotFound),
			errors.Is(err, repositories.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tag or target entity not found",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrInvalidEntityKind):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid entity kind",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not tag entity",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUntagEntity detaches a tag from an entity.
func (h *TagHandler) HandleUntagEntity(c *fiber.Ctx) error {
	tagID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tag ID must be a number",
		})
	}

	var req TagEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "entity_kind (product or category) and entity_id are required",
			"error":   err.Error(),
		})
	}

	if err := h.service.UntagEntity(uint(tagID), req.EntityKind, req.EntityID); err != nil {
		log.Printf("Error untagging %s %d from tag %d: %v", req.EntityKind, req.EntityID, tagID, err)
		if errors.Is(err, repositories.ErrTagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tag attachment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not untag entity",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Tag detached successfully",
	})
}

// entityKindFromPath maps a URL collection segment onto an entity kind.
var entityKindFromPath = map[string]models.EntityKind{
	"products":   models.EntityProduct,
	"categories": models.EntityCategory,
}

// HandleGetTagsFor lists the tags attached to one entity.
func (h *TagHandler) HandleGetTagsFor(c *fiber.Ctx) error {
	kind, ok := entityKindFromPath[c.Params("kind")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid entity kind",
		})
	}
	entityID, err := strconv.ParseUint(c.Params("entityID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Entity ID must be a number",
		})
	}

	tags, err := h.service.GetTagsFor(kind, uint(entityID))
	if err != nil {
		log.Printf("Error getting tags for %s %d: %v", kind, entityID, err)
		switch {
		case errors.Is(err, services.ErrInvalidEntityKind):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid entity kind",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrProductNotFound),
			errors.Is(err, repositories.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Entity not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tags",
			"error":   err.Error(),
		})
	}
	return c.JSON(tags)
}
