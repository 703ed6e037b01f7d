package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// TagService handles tags and their attachment to catalog entities. Each
// taggable kind has its own existence check, dispatched by entity kind, so a
// tag can never point at a row that does not exist.
type TagService struct {
	tagRepo repositories.TagRepository
	exists  map[models.EntityKind]func(id uint) error
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repositories.TagRepository, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		exists: map[models.EntityKind]func(id uint) error{
			models.EntityProduct: func(id uint) error {
				_, err := productRepo.GetByID(id)
				return err
			},
			models.EntityCategory: func(id uint) error {
				_, err := categoryRepo.GetByID(id)
				return err
			},
		},
	}
}

// GetAllTags retrieves all tags.
func (s *TagService) GetAllTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// CreateTag creates a new tag.
func (s *TagService) CreateTag(tag *models.Tag) error {
	return s.tagRepo.Create(tag)
}

// DeleteTag removes a tag and all its attachments.
func (s *TagService) DeleteTag(id uint) error {
	return s.tagRepo.Delete(id)
}

// TagEntity attaches an existing tag to an existing entity.
func (s *TagService) TagEntity(tagID uint, kind models.EntityKind, entityID uint) (*models.TaggedItem, error) {
	check, ok := s.exists[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrInvalidEntityKind)
	}
	if err := check(entityID); err != nil {
		return nil, err
	}
	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		return nil, err
	}
	item := &models.TaggedItem{TagID: tagID, EntityKind: kind, EntityID: entityID}
	if err := s.tagRepo.AttachItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UntagEntity removes a tag attachment.
func (s *TagService) UntagEntity(tagID uint, kind models.EntityKind, entityID uint) error {
	if !kind.Valid() {
		return fmt.Errorf("%q: %w", kind, ErrInvalidEntityKind)
	}
	return s.tagRepo.DetachItem(tagID, kind, entityID)
}

// GetTagsFor lists the tags attached to one entity.
func (s *TagService) GetTagsFor(kind models.EntityKind, entityID uint) ([]models.Tag, error) {
	check, ok := s.exists[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrInvalidEntityKind)
	}
	if err := check(entityID); err != nil {
		return nil, err
	}
	return s.tagRepo.GetTagsFor(kind, entityID)
}
