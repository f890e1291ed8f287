package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

func openReport(t *testing.T, id uint) *moderation.Report {
	rep, err := moderation.NewReport(1, moderation.TargetPart, 10, "spam")
	require.NoError(t, err)
	require.NoError(t, rep.SetID(id))
	return rep
}

func TestResolveReportUseCase_Resolve(t *testing.T) {
	reportRepo := new(mockReportRepository)
	rep := openReport(t, 3)

	reportRepo.On("GetByID", mock.Anything, uint(3)).Return(rep, nil)
	reportRepo.On("Update", mock.Anything, rep).Return(nil)

	uc := NewResolveReportUseCase(reportRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveReportCommand{ReportID: 3, AdminID: 9})

	require.NoError(t, err)
	assert.Equal(t, string(moderation.ReportStatusResolved), result.Status)
	assert.Equal(t, uint(9), result.ResolvedBy)
}

func TestResolveReportUseCase_Dismiss(t *testing.T) {
	reportRepo := new(mockReportRepository)
	rep := openReport(t, 4)

	reportRepo.On("GetByID", mock.Anything, uint(4)).Return(rep, nil)
	reportRepo.On("Update", mock.Anything, rep).Return(nil)

	uc := NewResolveReportUseCase(reportRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveReportCommand{ReportID: 4, AdminID: 9, Dismiss: true})

	require.NoError(t, err)
	assert.Equal(t, string(moderation.ReportStatusDismissed), result.Status)
}

func TestResolveReportUseCase_AlreadyClosed(t *testing.T) {
	reportRepo := new(mockReportRepository)
	rep := openReport(t, 5)
	require.NoError(t, rep.Resolve(9))

	reportRepo.On("GetByID", mock.Anything, uint(5)).Return(rep, nil)

	uc := NewResolveReportUseCase(reportRepo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ResolveReportCommand{ReportID: 5, AdminID: 9})

	assert.True(t, errors.IsConflictError(err))
}
