package usecases

import (
	"context"
	"time"

	"github.com/camber-app/camber/internal/application/moderation/dto"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/shared/errors"
)

const (
	defaultFlagThreshold  = 3
	defaultFlagRatio      = 0.5
	defaultFlagWindowDays = 30
)

type FlaggedContentQuery struct {
	MinOpenReports int64
	MinRatio       float64
	WindowDays     int
	Limit          int
}

type FlaggedContentUseCase struct {
	reportRepo moderation.ReportRepository
}

func NewFlaggedContentUseCase(reportRepo moderation.ReportRepository) *FlaggedContentUseCase {
	return &FlaggedContentUseCase{reportRepo: reportRepo}
}

func (uc *FlaggedContentUseCase) Execute(ctx context.Context, query FlaggedContentQuery) ([]*dto.FlaggedTargetDTO, error) {
	threshold := query.MinOpenReports
	if threshold <= 0 {
		threshold = defaultFlagThreshold
	}
	ratio := query.MinRatio
	if ratio <= 0 {
		ratio = defaultFlagRatio
	}
	windowDays := query.WindowDays
	if windowDays <= 0 {
		windowDays = defaultFlagWindowDays
	}

	targets, err := uc.reportRepo.FlaggedTargets(ctx, moderation.FlaggedQuery{
		MinOpenReports:     threshold,
		MinReportVoteRatio: ratio,
		Window:             time.Duration(windowDays) * 24 * time.Hour,
		Limit:              query.Limit,
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to load flagged content")
	}
	return dto.ToFlaggedTargetDTOs(targets), nil
}
