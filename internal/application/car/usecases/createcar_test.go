package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/application/subscription/services"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

func freePlan(t *testing.T) *subscription.Plan {
	plan, err := subscription.NewPlan("Free", "free", 0, 1, 2, 15)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	return plan
}

func limitService(subRepo *mockSubscriptionRepository, planRepo *mockPlanRepository) *services.LimitService {
	return services.NewLimitService(subRepo, planRepo, logger.NewLogger())
}

func TestCreateCarUseCase_WithinLimit(t *testing.T) {
	carRepo := new(mockCarRepository)
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)

	subRepo.On("GetActiveByUserID", mock.Anything, uint(1)).Return(nil, nil)
	planRepo.On("GetBySlug", mock.Anything, "free").Return(freePlan(t), nil)
	carRepo.On("CountByOwner", mock.Anything, uint(1)).Return(int64(0), nil)
	carRepo.On("Create", mock.Anything, mock.AnythingOfType("*car.Car")).Return(nil)

	uc := NewCreateCarUseCase(carRepo, limitService(subRepo, planRepo), logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateCarCommand{
		OwnerID: 1, Make: "Toyota", Model: "GR86", Year: 2023,
	})

	require.NoError(t, err)
	assert.Equal(t, "GR86", result.Model)
	carRepo.AssertExpectations(t)
}

func TestCreateCarUseCase_PlanLimitReached(t *testing.T) {
	carRepo := new(mockCarRepository)
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)

	subRepo.On("GetActiveByUserID", mock.Anything, uint(1)).Return(nil, nil)
	planRepo.On("GetBySlug", mock.Anything, "free").Return(freePlan(t), nil)
	carRepo.On("CountByOwner", mock.Anything, uint(1)).Return(int64(1), nil)

	uc := NewCreateCarUseCase(carRepo, limitService(subRepo, planRepo), logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateCarCommand{
		OwnerID: 1, Make: "Toyota", Model: "GR86", Year: 2023,
	})

	assert.True(t, errors.IsForbiddenError(err))
	carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCarUseCase_SubscribedPlanApplies(t *testing.T) {
	carRepo := new(mockCarRepository)
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)

	garage, err := subscription.NewPlan("Garage", "garage", 1900, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, garage.SetID(3))

	sub, err := subscription.NewSubscription(1, 3)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(7))

	subRepo.On("GetActiveByUserID", mock.Anything, uint(1)).Return(sub, nil)
	planRepo.On("GetByID", mock.Anything, uint(3)).Return(garage, nil)
	carRepo.On("CountByOwner", mock.Anything, uint(1)).Return(int64(50), nil)
	carRepo.On("Create", mock.Anything, mock.AnythingOfType("*car.Car")).Return(nil)

	uc := NewCreateCarUseCase(carRepo, limitService(subRepo, planRepo), logger.NewLogger())
	_, err = uc.Execute(context.Background(), CreateCarCommand{
		OwnerID: 1, Make: "Porsche", Model: "911", Year: 1999,
	})

	require.NoError(t, err)
	carRepo.AssertExpectations(t)
}

func TestCreateCarUseCase_InvalidYear(t *testing.T) {
	carRepo := new(mockCarRepository)
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)

	subRepo.On("GetActiveByUserID", mock.Anything, uint(1)).Return(nil, nil)
	planRepo.On("GetBySlug", mock.Anything, "free").Return(freePlan(t), nil)
	carRepo.On("CountByOwner", mock.Anything, uint(1)).Return(int64(0), nil)

	uc := NewCreateCarUseCase(carRepo, limitService(subRepo, planRepo), logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateCarCommand{
		OwnerID: 1, Make: "Ford", Model: "Model T", Year: 1850,
	})

	assert.True(t, errors.IsValidationError(err))
}
