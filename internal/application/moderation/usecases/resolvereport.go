package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/moderation/dto"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type ResolveReportCommand struct {
	ReportID uint
	AdminID  uint
	// Dismiss closes the report without action instead of resolving it.
	Dismiss bool
}

type ResolveReportUseCase struct {
	reportRepo moderation.ReportRepository
	logger     logger.Interface
}

func NewResolveReportUseCase(reportRepo moderation.ReportRepository, logger logger.Interface) *ResolveReportUseCase {
	return &ResolveReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *ResolveReportUseCase) Execute(ctx context.Context, cmd ResolveReportCommand) (*dto.ReportDTO, error) {
	report, err := uc.reportRepo.GetByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load report")
	}
	if report == nil {
		return nil, errors.NewNotFoundError("report not found")
	}

	if cmd.Dismiss {
		err = report.Dismiss(cmd.AdminID)
	} else {
		err = report.Resolve(cmd.AdminID)
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.reportRepo.Update(ctx, report); err != nil {
		uc.logger.Errorw("failed to update report", "error", err, "report_id", report.ID())
		return nil, errors.NewInternalError("failed to update report")
	}

	uc.logger.Infow("report closed", "report_id", report.ID(), "status", report.Status(), "admin_id", cmd.AdminID)
	return dto.ToReportDTO(report), nil
}
