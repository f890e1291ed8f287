package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type DeleteCarCommand struct {
	CarID       uint
	RequesterID uint
	Role        authorization.UserRole
}

type DeleteCarUseCase struct {
	carRepo car.Repository
	logger  logger.Interface
}

func NewDeleteCarUseCase(carRepo car.Repository, logger logger.Interface) *DeleteCarUseCase {
	return &DeleteCarUseCase{carRepo: carRepo, logger: logger}
}

func (uc *DeleteCarUseCase) Execute(ctx context.Context, cmd DeleteCarCommand) error {
	c, err := uc.carRepo.GetByID(ctx, cmd.CarID)
	if err != nil {
		return errors.NewInternalError("failed to load car")
	}
	if c == nil {
		return errors.NewNotFoundError("car not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.Role, c.OwnerID()) {
		return errors.NewForbiddenError("not the owner of this car")
	}

	if err := uc.carRepo.Delete(ctx, cmd.CarID); err != nil {
		uc.logger.Errorw("failed to delete car", "error", err, "car_id", cmd.CarID)
		return errors.NewInternalError("failed to delete car")
	}

	uc.logger.Infow("car deleted", "car_id", cmd.CarID, "requester_id", cmd.RequesterID)
	return nil
}
