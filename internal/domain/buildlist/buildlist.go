package buildlist

import (
	"fmt"
	"strings"
	"time"
)

// Visibility controls who can browse a build list.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
)

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityUnlisted
}

// BuildList is a named collection of catalog parts planned or installed on
// one car. The description is markdown; DescriptionHTML carries the
// sanitized rendering.
type BuildList struct {
	id              uint
	carID           uint
	ownerID         uint
	name            string
	description     string
	descriptionHTML string
	visibility      Visibility
	createdAt       time.Time
	updatedAt       time.Time
	items           []*Item
}

func NewBuildList(carID, ownerID uint, name, description string, visibility Visibility) (*BuildList, error) {
	if carID == 0 {
		return nil, fmt.Errorf("car ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(description) > 20000 {
		return nil, fmt.Errorf("description exceeds maximum length of 20000 characters")
	}
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid visibility: %s", visibility)
	}

	now := time.Now()
	return &BuildList{
		carID:       carID,
		ownerID:     ownerID,
		name:        name,
		description: description,
		visibility:  visibility,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructBuildList rebuilds a build list from persistence without validation.
func ReconstructBuildList(
	id, carID, ownerID uint,
	name, description, descriptionHTML string,
	visibility Visibility,
	createdAt, updatedAt time.Time,
	items []*Item,
) *BuildList {
	return &BuildList{
		id:              id,
		carID:           carID,
		ownerID:         ownerID,
		name:            name,
		description:     description,
		descriptionHTML: descriptionHTML,
		visibility:      visibility,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		items:           items,
	}
}

func (b *BuildList) ID() uint                { return b.id }
func (b *BuildList) CarID() uint             { return b.carID }
func (b *BuildList) OwnerID() uint           { return b.ownerID }
func (b *BuildList) Name() string            { return b.name }
func (b *BuildList) Description() string     { return b.description }
func (b *BuildList) DescriptionHTML() string { return b.descriptionHTML }
func (b *BuildList) Visibility() Visibility  { return b.visibility }
func (b *BuildList) CreatedAt() time.Time    { return b.createdAt }
func (b *BuildList) UpdatedAt() time.Time    { return b.updatedAt }
func (b *BuildList) Items() []*Item          { return b.items }

func (b *BuildList) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("build list ID already set")
	}
	b.id = id
	return nil
}

// SetDescriptionHTML stores the sanitized rendering of the description.
func (b *BuildList) SetDescriptionHTML(html string) {
	b.descriptionHTML = html
}

func (b *BuildList) SetItems(items []*Item) {
	b.items = items
}

// Update changes the mutable fields, validating each.
func (b *BuildList) Update(name, description string, visibility Visibility) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(description) > 20000 {
		return fmt.Errorf("description exceeds maximum length of 20000 characters")
	}
	if !visibility.IsValid() {
		return fmt.Errorf("invalid visibility: %s", visibility)
	}

	b.name = name
	b.description = description
	b.visibility = visibility
	b.updatedAt = time.Now()
	return nil
}

// HasPart reports whether the list already contains a catalog part.
func (b *BuildList) HasPart(partID uint) bool {
	for _, item := range b.items {
		if item.PartID() == partID {
			return true
		}
	}
	return false
}
