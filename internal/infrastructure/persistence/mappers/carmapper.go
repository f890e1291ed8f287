package mappers

import (
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

// CarMapper converts between car domain entities and persistence models.
type CarMapper struct{}

func NewCarMapper() *CarMapper {
	return &CarMapper{}
}

func (m *CarMapper) ToEntity(model *models.CarModel) *car.Car {
	if model == nil {
		return nil
	}
	return car.ReconstructCar(
		model.ID,
		model.OwnerID,
		model.Make,
		model.Model,
		model.Year,
		model.Trim,
		model.Nickname,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CarMapper) ToModel(entity *car.Car) *models.CarModel {
	if entity == nil {
		return nil
	}
	return &models.CarModel{
		ID:        entity.ID(),
		OwnerID:   entity.OwnerID(),
		Make:      entity.Make(),
		Model:     entity.Model(),
		Year:      entity.Year(),
		Trim:      entity.Trim(),
		Nickname:  entity.Nickname(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CarMapper) ToEntities(ms []*models.CarModel) []*car.Car {
	entities := make([]*car.Car, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
