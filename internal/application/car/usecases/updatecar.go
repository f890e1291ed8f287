package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/car/dto"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type UpdateCarCommand struct {
	CarID       uint
	RequesterID uint
	Role        authorization.UserRole
	Make        string
	Model       string
	Year        int
	Trim        string
	Nickname    string
}

type UpdateCarUseCase struct {
	carRepo car.Repository
	logger  logger.Interface
}

func NewUpdateCarUseCase(carRepo car.Repository, logger logger.Interface) *UpdateCarUseCase {
	return &UpdateCarUseCase{carRepo: carRepo, logger: logger}
}

func (uc *UpdateCarUseCase) Execute(ctx context.Context, cmd UpdateCarCommand) (*dto.CarDTO, error) {
	c, err := uc.carRepo.GetByID(ctx, cmd.CarID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load car")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("car not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.Role, c.OwnerID()) {
		return nil, errors.NewForbiddenError("not the owner of this car")
	}

	if err := c.Update(cmd.Make, cmd.Model, cmd.Year, cmd.Trim, cmd.Nickname); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.carRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update car", "error", err, "car_id", c.ID())
		return nil, errors.NewInternalError("failed to update car")
	}
	return dto.ToCarDTO(c), nil
}
