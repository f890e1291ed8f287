package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

const verificationTokenTTL = 24 * time.Hour

type RegisterUserCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	emails   EmailSender
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emails EmailSender,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		emails:   emails,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(cmd.Email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newUser.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The first account becomes the administrator.
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count == 0 {
		if err := newUser.ChangeRole(authorization.RoleAdmin); err != nil {
			return nil, fmt.Errorf("failed to assign admin role: %w", err)
		}
	}

	token, err := newUser.GenerateVerificationToken(verificationTokenTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate verification token", "error", err)
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if uc.emails != nil {
		if err := uc.emails.SendVerificationEmail(newUser.Email(), token); err != nil {
			// Account exists; the user can request a new email later.
			uc.logger.Warnw("failed to send verification email", "error", err, "user_id", newUser.ID())
		}
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", newUser.Role())
	return dto.ToUserDTO(newUser), nil
}
