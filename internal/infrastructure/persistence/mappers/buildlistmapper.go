package mappers

import (
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

// BuildListMapper converts between build list domain entities and
// persistence models.
type BuildListMapper struct{}

func NewBuildListMapper() *BuildListMapper {
	return &BuildListMapper{}
}

func (m *BuildListMapper) ToEntity(model *models.BuildListModel, items []*models.BuildListItemModel) *buildlist.BuildList {
	if model == nil {
		return nil
	}
	return buildlist.ReconstructBuildList(
		model.ID,
		model.CarID,
		model.OwnerID,
		model.Name,
		model.Description,
		model.DescriptionHTML,
		buildlist.Visibility(model.Visibility),
		model.CreatedAt,
		model.UpdatedAt,
		m.ItemsToEntities(items),
	)
}

func (m *BuildListMapper) ToModel(entity *buildlist.BuildList) *models.BuildListModel {
	if entity == nil {
		return nil
	}
	return &models.BuildListModel{
		ID:              entity.ID(),
		CarID:           entity.CarID(),
		OwnerID:         entity.OwnerID(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		DescriptionHTML: entity.DescriptionHTML(),
		Visibility:      string(entity.Visibility()),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *BuildListMapper) ItemToEntity(model *models.BuildListItemModel) *buildlist.Item {
	if model == nil {
		return nil
	}
	return buildlist.ReconstructItem(
		model.ID,
		model.BuildListID,
		model.PartID,
		model.Note,
		model.CreatedAt,
	)
}

func (m *BuildListMapper) ItemToModel(entity *buildlist.Item) *models.BuildListItemModel {
	if entity == nil {
		return nil
	}
	return &models.BuildListItemModel{
		ID:          entity.ID(),
		BuildListID: entity.BuildListID(),
		PartID:      entity.PartID(),
		Note:        entity.Note(),
		CreatedAt:   entity.AddedAt(),
	}
}

func (m *BuildListMapper) ItemsToEntities(ms []*models.BuildListItemModel) []*buildlist.Item {
	items := make([]*buildlist.Item, 0, len(ms))
	for _, model := range ms {
		items = append(items, m.ItemToEntity(model))
	}
	return items
}
