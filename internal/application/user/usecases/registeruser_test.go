package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/infrastructure/auth"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

func TestRegisterUserUseCase_FirstUserBecomesAdmin(t *testing.T) {
	userRepo := new(mockUserRepository)
	emails := new(mockEmailSender)
	hasher := auth.NewBcryptPasswordHasher(4)

	userRepo.On("ExistsByEmail", mock.Anything, "first@example.com").Return(false, nil)
	userRepo.On("Count", mock.Anything).Return(int64(0), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)
	emails.On("SendVerificationEmail", "first@example.com", mock.AnythingOfType("string")).Return(nil)

	uc := NewRegisterUserUseCase(userRepo, hasher, emails, logger.NewLogger())
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "first@example.com", Name: "First", Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
	emails.AssertExpectations(t)
}

func TestRegisterUserUseCase_LaterUsersAreRegular(t *testing.T) {
	userRepo := new(mockUserRepository)
	emails := new(mockEmailSender)
	hasher := auth.NewBcryptPasswordHasher(4)

	userRepo.On("ExistsByEmail", mock.Anything, "second@example.com").Return(false, nil)
	userRepo.On("Count", mock.Anything).Return(int64(3), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)
	emails.On("SendVerificationEmail", "second@example.com", mock.AnythingOfType("string")).Return(nil)

	uc := NewRegisterUserUseCase(userRepo, hasher, emails, logger.NewLogger())
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "second@example.com", Name: "Second", Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "user", result.Role)
}

func TestRegisterUserUseCase_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	emails := new(mockEmailSender)
	hasher := auth.NewBcryptPasswordHasher(4)

	userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	uc := NewRegisterUserUseCase(userRepo, hasher, emails, logger.NewLogger())
	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "taken@example.com", Name: "Dup", Password: "correct-horse",
	})

	assert.True(t, errors.IsConflictError(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserUseCase_ShortPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	emails := new(mockEmailSender)
	hasher := auth.NewBcryptPasswordHasher(4)

	userRepo.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil)

	uc := NewRegisterUserUseCase(userRepo, hasher, emails, logger.NewLogger())
	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "a@example.com", Name: "A", Password: "short",
	})

	assert.True(t, errors.IsValidationError(err))
}
