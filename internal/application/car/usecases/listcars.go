package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/car/dto"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListCarsQuery struct {
	Page     int
	PageSize int
	OwnerID  uint
	Make     string
	Model    string
	Year     int
	OrderBy  string
	Order    string
}

type ListCarsUseCase struct {
	carRepo car.Repository
}

func NewListCarsUseCase(carRepo car.Repository) *ListCarsUseCase {
	return &ListCarsUseCase{carRepo: carRepo}
}

func (uc *ListCarsUseCase) Execute(ctx context.Context, query ListCarsQuery) ([]*dto.CarDTO, int64, error) {
	cars, total, err := uc.carRepo.List(ctx, car.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		OwnerID:  query.OwnerID,
		Make:     query.Make,
		Model:    query.Model,
		Year:     query.Year,
		OrderBy:  query.OrderBy,
		Order:    query.Order,
	})
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list cars")
	}
	return dto.ToCarDTOs(cars), total, nil
}
