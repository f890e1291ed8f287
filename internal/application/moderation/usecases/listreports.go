package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/moderation/dto"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListReportsQuery struct {
	Page       int
	PageSize   int
	Status     string
	TargetType string
	OrderBy    string
	Order      string
}

type ListReportsUseCase struct {
	reportRepo moderation.ReportRepository
}

func NewListReportsUseCase(reportRepo moderation.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) ([]*dto.ReportDTO, int64, error) {
	reports, total, err := uc.reportRepo.List(ctx, moderation.ReportFilter{
		Page:       query.Page,
		PageSize:   query.PageSize,
		Status:     moderation.ReportStatus(query.Status),
		TargetType: moderation.TargetType(query.TargetType),
		OrderBy:    query.OrderBy,
		Order:      query.Order,
	})
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list reports")
	}
	return dto.ToReportDTOs(reports), total, nil
}
