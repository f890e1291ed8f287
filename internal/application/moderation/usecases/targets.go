package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
)

// targetChecker verifies a vote or report points at existing content.
type targetChecker struct {
	partRepo part.Repository
	listRepo buildlist.Repository
}

func (tc *targetChecker) exists(ctx context.Context, targetType moderation.TargetType, targetID uint) error {
	switch targetType {
	case moderation.TargetPart:
		p, err := tc.partRepo.GetByID(ctx, targetID)
		if err != nil {
			return errors.NewInternalError("failed to load part")
		}
		if p == nil {
			return errors.NewNotFoundError("part not found")
		}
	case moderation.TargetBuildList:
		l, err := tc.listRepo.GetByID(ctx, targetID)
		if err != nil {
			return errors.NewInternalError("failed to load build list")
		}
		if l == nil {
			return errors.NewNotFoundError("build list not found")
		}
	default:
		return errors.NewValidationError("invalid target type: " + string(targetType))
	}
	return nil
}
