package mappers

import (
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

// PlanMapper converts between plan domain entities and persistence models.
type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(model *models.PlanModel) *subscription.Plan {
	if model == nil {
		return nil
	}
	return subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Slug,
		model.PriceCents,
		model.MaxCars,
		model.MaxBuildLists,
		model.MaxItemsPerList,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PlanMapper) ToModel(entity *subscription.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}
	return &models.PlanModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		Slug:            entity.Slug(),
		PriceCents:      entity.PriceCents(),
		MaxCars:         entity.MaxCars(),
		MaxBuildLists:   entity.MaxBuildLists(),
		MaxItemsPerList: entity.MaxItemsPerList(),
		Active:          entity.Active(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *PlanMapper) ToEntities(ms []*models.PlanModel) []*subscription.Plan {
	entities := make([]*subscription.Plan, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}

// SubscriptionMapper converts between subscription domain entities and
// persistence models.
type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}
	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		subscription.Status(model.Status),
		model.StartedAt,
		model.CanceledAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		PlanID:     entity.PlanID(),
		Status:     string(entity.Status()),
		StartedAt:  entity.StartedAt(),
		CanceledAt: entity.CanceledAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}
