package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/part/dto"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type UpdatePartCommand struct {
	PartID      uint
	RequesterID uint
	Role        authorization.UserRole
	Name        string
	Brand       string
	Category    string
	Description string
	PriceCents  int64
}

type UpdatePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

func NewUpdatePartUseCase(partRepo part.Repository, logger logger.Interface) *UpdatePartUseCase {
	return &UpdatePartUseCase{partRepo: partRepo, logger: logger}
}

func (uc *UpdatePartUseCase) Execute(ctx context.Context, cmd UpdatePartCommand) (*dto.PartDTO, error) {
	p, err := uc.partRepo.GetByID(ctx, cmd.PartID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load part")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("part not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.Role, p.CreatedBy()) {
		return nil, errors.NewForbiddenError("not the creator of this part")
	}

	if err := p.Update(cmd.Name, cmd.Brand, part.Category(cmd.Category), cmd.Description, cmd.PriceCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.partRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update part", "error", err, "part_id", p.ID())
		return nil, errors.NewInternalError("failed to update part")
	}
	return dto.ToPartDTO(p), nil
}
