package usecases

import (
	"context"
	"fmt"

	"github.com/camber-app/camber/internal/application/car/dto"
	"github.com/camber-app/camber/internal/application/subscription/services"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type CreateCarCommand struct {
	OwnerID  uint
	Make     string
	Model    string
	Year     int
	Trim     string
	Nickname string
}

type CreateCarUseCase struct {
	carRepo car.Repository
	limits  *services.LimitService
	logger  logger.Interface
}

func NewCreateCarUseCase(carRepo car.Repository, limits *services.LimitService, logger logger.Interface) *CreateCarUseCase {
	return &CreateCarUseCase{carRepo: carRepo, limits: limits, logger: logger}
}

func (uc *CreateCarUseCase) Execute(ctx context.Context, cmd CreateCarCommand) (*dto.CarDTO, error) {
	plan, err := uc.limits.EffectivePlan(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan", "error", err, "user_id", cmd.OwnerID)
		return nil, errors.NewInternalError("failed to resolve plan")
	}

	count, err := uc.carRepo.CountByOwner(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to count cars")
	}
	if !plan.AllowsCars(count) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("plan %s allows at most %d cars", plan.Slug(), plan.MaxCars()))
	}

	c, err := car.NewCar(cmd.OwnerID, cmd.Make, cmd.Model, cmd.Year, cmd.Trim, cmd.Nickname)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.carRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create car", "error", err, "owner_id", cmd.OwnerID)
		return nil, errors.NewInternalError("failed to create car")
	}

	uc.logger.Infow("car created", "car_id", c.ID(), "owner_id", cmd.OwnerID)
	return dto.ToCarDTO(c), nil
}
