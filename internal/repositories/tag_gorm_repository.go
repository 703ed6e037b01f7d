package repositories

import (
	"errors"
	"fmt"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{
		db: db,
	}
}

// GetAll retrieves all tags ordered by label.
func (r *GORMTagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("label").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a single tag by its ID.
func (r *GORMTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag %d: %w", id, ErrTagNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by ID %d: %w", id, err)
	}
	return &tag, nil
}

// Create creates a new tag in the database.
func (r *GORMTagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// Delete deletes a tag and, in the same transaction, its attachments.
func (r *GORMTagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Tag{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete tag: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tag %d for deletion: %w", id, ErrTagNotFound)
		}
		if err := tx.Where("tag_id = ?", id).Delete(&models.TaggedItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete tag attachments: %w", err)
		}
		return nil
	})
}

// AttachItem records a tag attachment.
func (r *GORMTagRepository) AttachItem(item *models.TaggedItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to attach tag %d to %s %d: %w", item.TagID, item.EntityKind, item.EntityID, err)
	}
	return nil
}

// DetachItem removes a tag attachment.
func (r *GORMTagRepository) DetachItem(tagID uint, kind models.EntityKind, entityID uint) error {
	res := r.db.Where("tag_id = ? AND entity_kind = ? AND entity_id = ?", tagID, kind, entityID).
		Delete(&models.TaggedItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to detach tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tag %d on %s %d: %w", tagID, kind, entityID, ErrTagNotFound)
	}
	return nil
}

// GetTagsFor lists all tags attached to one entity.
func (r *GORMTagRepository) GetTagsFor(kind models.EntityKind, entityID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN tagged_items ON tagged_items.tag_id = tags.id").
		Where("tagged_items.entity_kind = ? AND tagged_items.entity_id = ?", kind, entityID).
		Order("tags.label").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tags for %s %d: %w", kind, entityID, err)
	}
	return tags, nil
}
