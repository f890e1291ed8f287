package buildlist

import "context"

// Repository defines persistence operations for build lists and their items.
type Repository interface {
	Create(ctx context.Context, list *BuildList) error
	GetByID(ctx context.Context, id uint) (*BuildList, error)
	Update(ctx context.Context, list *BuildList) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*BuildList, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)

	AddItem(ctx context.Context, item *Item) error
	RemoveItem(ctx context.Context, buildListID, itemID uint) error
	CountItems(ctx context.Context, buildListID uint) (int64, error)
}

// ListFilter represents filtering and pagination options for build list queries.
type ListFilter struct {
	Page       int
	PageSize   int
	OwnerID    uint
	CarID      uint
	Visibility Visibility
	OrderBy    string
	Order      string
}
