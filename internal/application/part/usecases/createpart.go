package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/part/dto"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type CreatePartCommand struct {
	Name        string
	Brand       string
	Category    string
	Description string
	PriceCents  int64
	CreatedBy   uint
}

type CreatePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

func NewCreatePartUseCase(partRepo part.Repository, logger logger.Interface) *CreatePartUseCase {
	return &CreatePartUseCase{partRepo: partRepo, logger: logger}
}

func (uc *CreatePartUseCase) Execute(ctx context.Context, cmd CreatePartCommand) (*dto.PartDTO, error) {
	p, err := part.NewPart(cmd.Name, cmd.Brand, part.Category(cmd.Category),
		cmd.Description, cmd.PriceCents, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.partRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create part", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create part")
	}

	uc.logger.Infow("part created", "part_id", p.ID(), "created_by", cmd.CreatedBy)
	return dto.ToPartDTO(p), nil
}
