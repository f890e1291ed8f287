package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/moderation/dto"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type CastVoteCommand struct {
	UserID     uint
	TargetType string
	TargetID   uint
	Value      int
}

type CastVoteUseCase struct {
	voteRepo moderation.VoteRepository
	targets  targetChecker
	logger   logger.Interface
}

func NewCastVoteUseCase(
	voteRepo moderation.VoteRepository,
	partRepo part.Repository,
	listRepo buildlist.Repository,
	logger logger.Interface,
) *CastVoteUseCase {
	return &CastVoteUseCase{
		voteRepo: voteRepo,
		targets:  targetChecker{partRepo: partRepo, listRepo: listRepo},
		logger:   logger,
	}
}

// Execute applies one-vote-per-target semantics: a fresh vote is
// recorded, repeating the same value removes it, and the opposite
// value flips it.
func (uc *CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (*dto.VoteResultDTO, error) {
	if cmd.Value != 1 && cmd.Value != -1 {
		return nil, errors.NewValidationError("vote value must be 1 or -1")
	}

	targetType := moderation.TargetType(cmd.TargetType)
	if err := uc.targets.exists(ctx, targetType, cmd.TargetID); err != nil {
		return nil, err
	}

	existing, err := uc.voteRepo.GetByUserAndTarget(ctx, cmd.UserID, targetType, cmd.TargetID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load vote")
	}

	var standing int64
	switch {
	case existing == nil:
		vote, err := moderation.NewVote(cmd.UserID, targetType, cmd.TargetID, cmd.Value)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.voteRepo.Create(ctx, vote); err != nil {
			uc.logger.Errorw("failed to create vote", "error", err, "user_id", cmd.UserID)
			return nil, errors.NewInternalError("failed to create vote")
		}
		standing = int64(cmd.Value)

	case existing.Value() == cmd.Value:
		if err := uc.voteRepo.Delete(ctx, existing.ID()); err != nil {
			uc.logger.Errorw("failed to remove vote", "error", err, "vote_id", existing.ID())
			return nil, errors.NewInternalError("failed to remove vote")
		}
		standing = 0

	default:
		existing.Flip()
		if err := uc.voteRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to flip vote", "error", err, "vote_id", existing.ID())
			return nil, errors.NewInternalError("failed to flip vote")
		}
		standing = int64(existing.Value())
	}

	summary, err := uc.voteRepo.Summary(ctx, targetType, cmd.TargetID)
	if err != nil {
		return nil, errors.NewInternalError("failed to summarize votes")
	}

	return &dto.VoteResultDTO{
		TargetType: cmd.TargetType,
		TargetID:   cmd.TargetID,
		Value:      standing,
		Upvotes:    summary.Upvotes,
		Downvotes:  summary.Downvotes,
		Score:      summary.Score(),
	}, nil
}
