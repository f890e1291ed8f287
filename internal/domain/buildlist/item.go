package buildlist

import (
	"fmt"
	"time"
)

// Item is one catalog part on a build list, with an optional install note.
type Item struct {
	id          uint
	buildListID uint
	partID      uint
	note        string
	addedAt     time.Time
}

func NewItem(buildListID, partID uint, note string) (*Item, error) {
	if buildListID == 0 {
		return nil, fmt.Errorf("build list ID is required")
	}
	if partID == 0 {
		return nil, fmt.Errorf("part ID is required")
	}
	if len(note) > 1000 {
		return nil, fmt.Errorf("note exceeds maximum length of 1000 characters")
	}

	return &Item{
		buildListID: buildListID,
		partID:      partID,
		note:        note,
		addedAt:     time.Now(),
	}, nil
}

// ReconstructItem rebuilds an item from persistence without validation.
func ReconstructItem(id, buildListID, partID uint, note string, addedAt time.Time) *Item {
	return &Item{
		id:          id,
		buildListID: buildListID,
		partID:      partID,
		note:        note,
		addedAt:     addedAt,
	}
}

func (i *Item) ID() uint           { return i.id }
func (i *Item) BuildListID() uint  { return i.buildListID }
func (i *Item) PartID() uint       { return i.partID }
func (i *Item) Note() string       { return i.note }
func (i *Item) AddedAt() time.Time { return i.addedAt }

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID already set")
	}
	i.id = id
	return nil
}
