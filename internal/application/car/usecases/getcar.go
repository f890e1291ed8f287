package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/car/dto"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/errors"
)

type GetCarUseCase struct {
	carRepo car.Repository
}

func NewGetCarUseCase(carRepo car.Repository) *GetCarUseCase {
	return &GetCarUseCase{carRepo: carRepo}
}

func (uc *GetCarUseCase) Execute(ctx context.Context, carID uint) (*dto.CarDTO, error) {
	c, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load car")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("car not found")
	}
	return dto.ToCarDTO(c), nil
}
