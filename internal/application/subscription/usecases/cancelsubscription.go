package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type CancelSubscriptionUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

func NewCancelSubscriptionUseCase(subRepo subscription.Repository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription")
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("no active subscription")
	}

	if err := sub.Cancel(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.subRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to cancel subscription", "error", err, "subscription_id", sub.ID())
		return nil, errors.NewInternalError("failed to cancel subscription")
	}

	uc.logger.Infow("subscription canceled", "user_id", userID, "subscription_id", sub.ID())
	return dto.ToSubscriptionDTO(sub, nil), nil
}
