package models

// EntityKind names a taggable entity type. Tagging uses an explicit kind
// enum plus an id instead of an untyped polymorphic reference, so each kind
// can be resolved through its own table.
type EntityKind string

const (
	EntityProduct  EntityKind = "product"
	EntityCategory EntityKind = "category"
)

// Valid reports whether k names a taggable entity kind.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityProduct, EntityCategory:
		return true
	}
	return false
}

// Tag is a reusable label that can be attached to catalog entities.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,min=1,max=255"`
}

// TaggedItem attaches a tag to one entity, identified by kind and id.
type TaggedItem struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TagID      uint       `json:"tag_id" gorm:"not null;uniqueIndex:idx_tag_entity"`
	Tag        *Tag       `json:"tag,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	EntityKind EntityKind `json:"entity_kind" gorm:"type:varchar(20);not null;uniqueIndex:idx_tag_entity" validate:"required,oneof=product category"`
	EntityID   uint       `json:"entity_id" gorm:"not null;uniqueIndex:idx_tag_entity" validate:"required"`
}
