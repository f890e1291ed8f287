package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/domain/subscription"
)

type mockCarRepository struct {
	mock.Mock
}

func (m *mockCarRepository) Create(ctx context.Context, c *car.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCarRepository) GetByID(ctx context.Context, id uint) (*car.Car, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*car.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCarRepository) Update(ctx context.Context, c *car.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCarRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCarRepository) List(ctx context.Context, filter car.ListFilter) ([]*car.Car, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*car.Car), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockCarRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*subscription.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) GetActiveByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*subscription.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*subscription.Plan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanRepository) GetBySlug(ctx context.Context, slug string) (*subscription.Plan, error) {
	args := m.Called(ctx, slug)
	if v := args.Get(0); v != nil {
		return v.(*subscription.Plan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) List(ctx context.Context, activeOnly bool) ([]*subscription.Plan, error) {
	args := m.Called(ctx, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]*subscription.Plan), args.Error(1)
	}
	return nil, args.Error(1)
}
