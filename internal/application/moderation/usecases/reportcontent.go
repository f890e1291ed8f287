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

type ReportContentCommand struct {
	ReporterID uint
	TargetType string
	TargetID   uint
	Reason     string
}

type ReportContentUseCase struct {
	reportRepo moderation.ReportRepository
	targets    targetChecker
	logger     logger.Interface
}

func NewReportContentUseCase(
	reportRepo moderation.ReportRepository,
	partRepo part.Repository,
	listRepo buildlist.Repository,
	logger logger.Interface,
) *ReportContentUseCase {
	return &ReportContentUseCase{
		reportRepo: reportRepo,
		targets:    targetChecker{partRepo: partRepo, listRepo: listRepo},
		logger:     logger,
	}
}

func (uc *ReportContentUseCase) Execute(ctx context.Context, cmd ReportContentCommand) (*dto.ReportDTO, error) {
	targetType := moderation.TargetType(cmd.TargetType)
	if err := uc.targets.exists(ctx, targetType, cmd.TargetID); err != nil {
		return nil, err
	}

	// One open report per (reporter, target); a new report is allowed
	// once the previous one has been resolved or dismissed.
	open, err := uc.reportRepo.HasOpenReport(ctx, cmd.ReporterID, targetType, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to check for open report", "error", err, "reporter_id", cmd.ReporterID)
		return nil, errors.NewInternalError("failed to check for open report")
	}
	if open {
		return nil, errors.NewConflictError("you already have an open report on this target")
	}

	report, err := moderation.NewReport(cmd.ReporterID, targetType, cmd.TargetID, cmd.Reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		uc.logger.Errorw("failed to create report", "error", err, "reporter_id", cmd.ReporterID)
		return nil, errors.NewInternalError("failed to create report")
	}

	uc.logger.Infow("content reported", "report_id", report.ID(), "target_type", cmd.TargetType, "target_id", cmd.TargetID)
	return dto.ToReportDTO(report), nil
}
