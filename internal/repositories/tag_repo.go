package repositories

import (
	"storefront/internal/models"
)

// TagRepository defines the interface for tag and tagged-item data access.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	Create(tag *models.Tag) error
	Delete(id uint) error
	// AttachItem records a (tag, entity kind, entity id) association.
	AttachItem(item *models.TaggedItem) error
	DetachItem(tagID uint, kind models.EntityKind, entityID uint) error
	// GetTagsFor lists all tags attached to one entity.
	GetTagsFor(kind models.EntityKind, entityID uint) ([]models.Tag, error)
}
