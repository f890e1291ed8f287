// Package services holds subscription-area domain services shared by
// usecases in other areas.
package services

import (
	"context"
	"fmt"

	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/logger"
)

// FreePlanSlug is the fallback tier for users without an active
// subscription.
const FreePlanSlug = "free"

// LimitService resolves the plan whose usage limits apply to a user.
type LimitService struct {
	subRepo  subscription.Repository
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewLimitService(
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *LimitService {
	return &LimitService{
		subRepo:  subRepo,
		planRepo: planRepo,
		logger:   logger,
	}
}

// EffectivePlan returns the user's active plan, falling back to the
// free tier. A missing free plan is a deployment error.
func (s *LimitService) EffectivePlan(ctx context.Context, userID uint) (*subscription.Plan, error) {
	sub, err := s.subRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub != nil {
		plan, err := s.planRepo.GetByID(ctx, sub.PlanID())
		if err != nil {
			return nil, fmt.Errorf("failed to load plan: %w", err)
		}
		if plan != nil {
			return plan, nil
		}
		s.logger.Warnw("subscription references missing plan", "user_id", userID, "plan_id", sub.PlanID())
	}

	plan, err := s.planRepo.GetBySlug(ctx, FreePlanSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to load free plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("free plan is not configured")
	}
	return plan, nil
}
