package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
)

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) Create(ctx context.Context, vote *moderation.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockVoteRepository) GetByUserAndTarget(ctx context.Context, userID uint, targetType moderation.TargetType, targetID uint) (*moderation.Vote, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	if v := args.Get(0); v != nil {
		return v.(*moderation.Vote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVoteRepository) Update(ctx context.Context, vote *moderation.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockVoteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVoteRepository) Summary(ctx context.Context, targetType moderation.TargetType, targetID uint) (*moderation.VoteSummary, error) {
	args := m.Called(ctx, targetType, targetID)
	if v := args.Get(0); v != nil {
		return v.(*moderation.VoteSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Create(ctx context.Context, report *moderation.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) GetByID(ctx context.Context, id uint) (*moderation.Report, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*moderation.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReportRepository) Update(ctx context.Context, report *moderation.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) List(ctx context.Context, filter moderation.ReportFilter) ([]*moderation.Report, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*moderation.Report), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockReportRepository) HasOpenReport(ctx context.Context, reporterID uint, targetType moderation.TargetType, targetID uint) (bool, error) {
	args := m.Called(ctx, reporterID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReportRepository) FlaggedTargets(ctx context.Context, query moderation.FlaggedQuery) ([]*moderation.FlaggedTarget, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*moderation.FlaggedTarget), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPartRepository struct {
	mock.Mock
}

func (m *mockPartRepository) Create(ctx context.Context, p *part.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPartRepository) GetByID(ctx context.Context, id uint) (*part.Part, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*part.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartRepository) Update(ctx context.Context, p *part.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPartRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPartRepository) List(ctx context.Context, filter part.ListFilter) ([]*part.Part, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*part.Part), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

type mockBuildListRepository struct {
	mock.Mock
}

func (m *mockBuildListRepository) Create(ctx context.Context, list *buildlist.BuildList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *mockBuildListRepository) GetByID(ctx context.Context, id uint) (*buildlist.BuildList, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*buildlist.BuildList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildListRepository) Update(ctx context.Context, list *buildlist.BuildList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *mockBuildListRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBuildListRepository) List(ctx context.Context, filter buildlist.ListFilter) ([]*buildlist.BuildList, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*buildlist.BuildList), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockBuildListRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBuildListRepository) AddItem(ctx context.Context, item *buildlist.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockBuildListRepository) RemoveItem(ctx context.Context, buildListID, itemID uint) error {
	args := m.Called(ctx, buildListID, itemID)
	return args.Error(0)
}

func (m *mockBuildListRepository) CountItems(ctx context.Context, buildListID uint) (int64, error) {
	args := m.Called(ctx, buildListID)
	return args.Get(0).(int64), args.Error(1)
}
