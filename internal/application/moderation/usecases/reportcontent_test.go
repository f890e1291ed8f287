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

func TestReportContentUseCase_CreatesReport(t *testing.T) {
	reportRepo := new(mockReportRepository)
	partRepo := new(mockPartRepository)
	listRepo := new(mockBuildListRepository)

	partRepo.On("GetByID", mock.Anything, uint(42)).Return(testPart(t, 42), nil)
	reportRepo.On("HasOpenReport", mock.Anything, uint(1), moderation.TargetPart, uint(42)).Return(false, nil)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*moderation.Report")).Return(nil)

	uc := NewReportContentUseCase(reportRepo, partRepo, listRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ReportContentCommand{
		ReporterID: 1, TargetType: "part", TargetID: 42, Reason: "counterfeit listing",
	})

	require.NoError(t, err)
	assert.Equal(t, "open", result.Status)
	reportRepo.AssertExpectations(t)
}

func TestReportContentUseCase_SecondOpenReportConflicts(t *testing.T) {
	reportRepo := new(mockReportRepository)
	partRepo := new(mockPartRepository)
	listRepo := new(mockBuildListRepository)

	partRepo.On("GetByID", mock.Anything, uint(42)).Return(testPart(t, 42), nil)
	reportRepo.On("HasOpenReport", mock.Anything, uint(1), moderation.TargetPart, uint(42)).Return(true, nil)

	uc := NewReportContentUseCase(reportRepo, partRepo, listRepo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ReportContentCommand{
		ReporterID: 1, TargetType: "part", TargetID: 42, Reason: "counterfeit listing",
	})

	assert.True(t, errors.IsConflictError(err))
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
