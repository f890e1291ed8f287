package subscription

import "context"

// PlanRepository defines persistence operations for plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetBySlug(ctx context.Context, slug string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	List(ctx context.Context, activeOnly bool) ([]*Plan, error)
}

// Repository defines persistence operations for subscriptions.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetActiveByUserID(ctx context.Context, userID uint) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
}
