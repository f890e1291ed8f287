package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type SubscribeCommand struct {
	UserID   uint
	PlanSlug string
}

type SubscribeUseCase struct {
	subRepo  subscription.Repository
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewSubscribeUseCase(
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{subRepo: subRepo, planRepo: planRepo, logger: logger}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*dto.SubscriptionDTO, error) {
	plan, err := uc.planRepo.GetBySlug(ctx, cmd.PlanSlug)
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan")
	}
	if plan == nil || !plan.Active() {
		return nil, errors.NewNotFoundError("plan not found")
	}

	existing, err := uc.subRepo.GetActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription")
	}
	if existing != nil {
		if existing.PlanID() == plan.ID() {
			return nil, errors.NewConflictError("already subscribed to this plan")
		}
		// Switching plans cancels the current subscription first.
		if err := existing.Cancel(); err != nil {
			return nil, errors.NewInternalError("failed to cancel current subscription")
		}
		if err := uc.subRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to cancel subscription", "error", err, "subscription_id", existing.ID())
			return nil, errors.NewInternalError("failed to cancel current subscription")
		}
	}

	sub, err := subscription.NewSubscription(cmd.UserID, plan.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.subRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to create subscription")
	}

	uc.logger.Infow("subscription created", "user_id", cmd.UserID, "plan", plan.Slug())
	return dto.ToSubscriptionDTO(sub, plan), nil
}
