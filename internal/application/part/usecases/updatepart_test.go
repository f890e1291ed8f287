package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

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

func catalogPart(t *testing.T, id, createdBy uint) *part.Part {
	p, err := part.NewPart("Coilover Kit", "Ohlins", part.CategorySuspension, "", 219900, createdBy)
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	return p
}

func TestUpdatePartUseCase_CreatorMayEdit(t *testing.T) {
	repo := new(mockPartRepository)
	repo.On("GetByID", mock.Anything, uint(3)).Return(catalogPart(t, 3, 9), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*part.Part")).Return(nil)

	uc := NewUpdatePartUseCase(repo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdatePartCommand{
		PartID:      3,
		RequesterID: 9,
		Role:        authorization.RoleUser,
		Name:        "Coilover Kit R",
		Brand:       "Ohlins",
		Category:    string(part.CategorySuspension),
		PriceCents:  229900,
	})

	require.NoError(t, err)
	assert.Equal(t, "Coilover Kit R", result.Name)
	repo.AssertExpectations(t)
}

func TestUpdatePartUseCase_NonCreatorForbidden(t *testing.T) {
	repo := new(mockPartRepository)
	repo.On("GetByID", mock.Anything, uint(3)).Return(catalogPart(t, 3, 9), nil)

	uc := NewUpdatePartUseCase(repo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdatePartCommand{
		PartID:      3,
		RequesterID: 11,
		Role:        authorization.RoleUser,
		Name:        "Hijacked",
		Category:    string(part.CategorySuspension),
	})

	assert.True(t, errors.IsForbiddenError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePartUseCase_AdminMayEditAnyPart(t *testing.T) {
	repo := new(mockPartRepository)
	repo.On("GetByID", mock.Anything, uint(3)).Return(catalogPart(t, 3, 9), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*part.Part")).Return(nil)

	uc := NewUpdatePartUseCase(repo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdatePartCommand{
		PartID:      3,
		RequesterID: 1,
		Role:        authorization.RoleAdmin,
		Name:        "Coilover Kit",
		Brand:       "Ohlins",
		Category:    string(part.CategorySuspension),
		PriceCents:  199900,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(199900), result.PriceCents)
	repo.AssertExpectations(t)
}
