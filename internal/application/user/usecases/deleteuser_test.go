package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

func TestDeleteUserUseCase_Deletes(t *testing.T) {
	repo := new(mockUserRepository)

	target, err := user.NewUser("gone@example.com", "Gone")
	require.NoError(t, err)
	require.NoError(t, target.SetID(7))

	repo.On("GetByID", mock.Anything, uint(7)).Return(target, nil)
	repo.On("Delete", mock.Anything, uint(7)).Return(nil)

	uc := NewDeleteUserUseCase(repo, logger.NewLogger())
	err = uc.Execute(context.Background(), DeleteUserCommand{UserID: 7, RequesterID: 1})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteUserUseCase_SelfDeleteRejected(t *testing.T) {
	repo := new(mockUserRepository)

	uc := NewDeleteUserUseCase(repo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 1, RequesterID: 1})

	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUserUseCase_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewDeleteUserUseCase(repo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 99, RequesterID: 1})

	assert.True(t, errors.IsNotFoundError(err))
}
