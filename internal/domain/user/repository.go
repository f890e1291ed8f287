package user

import "context"

// Repository defines persistence operations for user aggregates.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByVerificationToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ListFilter represents filtering and pagination options for user lists.
type ListFilter struct {
	Page     int
	PageSize int
	Email    string
	Name     string
	Status   string
	Role     string
	OrderBy  string
	Order    string
}
