package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/part/dto"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
)

type GetPartUseCase struct {
	partRepo part.Repository
	voteRepo moderation.VoteRepository
}

func NewGetPartUseCase(partRepo part.Repository, voteRepo moderation.VoteRepository) *GetPartUseCase {
	return &GetPartUseCase{partRepo: partRepo, voteRepo: voteRepo}
}

// Execute loads a part with its vote summary.
func (uc *GetPartUseCase) Execute(ctx context.Context, partID uint) (*dto.PartDTO, error) {
	p, err := uc.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load part")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	result := dto.ToPartDTO(p)
	summary, err := uc.voteRepo.Summary(ctx, moderation.TargetPart, partID)
	if err == nil {
		result.Votes = dto.ToVoteSummaryDTO(summary)
	}
	return result, nil
}
