package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type DeletePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

func NewDeletePartUseCase(partRepo part.Repository, logger logger.Interface) *DeletePartUseCase {
	return &DeletePartUseCase{partRepo: partRepo, logger: logger}
}

// Execute removes a catalog part. Admin only; routing enforces the role.
func (uc *DeletePartUseCase) Execute(ctx context.Context, partID uint) error {
	p, err := uc.partRepo.GetByID(ctx, partID)
	if err != nil {
		return errors.NewInternalError("failed to load part")
	}
	if p == nil {
		return errors.NewNotFoundError("part not found")
	}

	if err := uc.partRepo.Delete(ctx, partID); err != nil {
		uc.logger.Errorw("failed to delete part", "error", err, "part_id", partID)
		return errors.NewInternalError("failed to delete part")
	}

	uc.logger.Infow("part deleted", "part_id", partID)
	return nil
}
