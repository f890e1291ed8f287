package part

import "context"

// Repository defines persistence operations for catalog parts.
type Repository interface {
	Create(ctx context.Context, part *Part) error
	GetByID(ctx context.Context, id uint) (*Part, error)
	Update(ctx context.Context, part *Part) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Part, int64, error)
}

// ListFilter represents filtering and pagination options for catalog queries.
// Search matches against name and brand.
type ListFilter struct {
	Page     int
	PageSize int
	Category Category
	Search   string
	OrderBy  string
	Order    string
}
