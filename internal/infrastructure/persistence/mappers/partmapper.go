package mappers

import (
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

// PartMapper converts between part domain entities and persistence models.
type PartMapper struct{}

func NewPartMapper() *PartMapper {
	return &PartMapper{}
}

func (m *PartMapper) ToEntity(model *models.PartModel) *part.Part {
	if model == nil {
		return nil
	}
	return part.ReconstructPart(
		model.ID,
		model.Name,
		model.Brand,
		part.Category(model.Category),
		model.Description,
		model.PriceCents,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PartMapper) ToModel(entity *part.Part) *models.PartModel {
	if entity == nil {
		return nil
	}
	return &models.PartModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Brand:       entity.Brand(),
		Category:    string(entity.Category()),
		Description: entity.Description(),
		PriceCents:  entity.PriceCents(),
		CreatedBy:   entity.CreatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *PartMapper) ToEntities(ms []*models.PartModel) []*part.Part {
	entities := make([]*part.Part, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
