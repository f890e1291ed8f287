package car

import "context"

// Repository defines persistence operations for cars.
type Repository interface {
	Create(ctx context.Context, car *Car) error
	GetByID(ctx context.Context, id uint) (*Car, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Car, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}

// ListFilter represents filtering and pagination options for car lists.
type ListFilter struct {
	Page     int
	PageSize int
	OwnerID  uint
	Make     string
	Model    string
	Year     int
	OrderBy  string
	Order    string
}
