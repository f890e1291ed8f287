package mappers

import (
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

// VoteMapper converts between vote domain entities and persistence models.
type VoteMapper struct{}

func NewVoteMapper() *VoteMapper {
	return &VoteMapper{}
}

func (m *VoteMapper) ToEntity(model *models.VoteModel) *moderation.Vote {
	if model == nil {
		return nil
	}
	return moderation.ReconstructVote(
		model.ID,
		model.UserID,
		moderation.TargetType(model.TargetType),
		model.TargetID,
		model.Value,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *VoteMapper) ToModel(entity *moderation.Vote) *models.VoteModel {
	if entity == nil {
		return nil
	}
	return &models.VoteModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		TargetType: string(entity.TargetType()),
		TargetID:   entity.TargetID(),
		Value:      entity.Value(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// ReportMapper converts between report domain entities and persistence models.
type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(model *models.ReportModel) *moderation.Report {
	if model == nil {
		return nil
	}
	var resolvedBy uint
	if model.ResolvedBy != nil {
		resolvedBy = *model.ResolvedBy
	}
	return moderation.ReconstructReport(
		model.ID,
		model.ReporterID,
		moderation.TargetType(model.TargetType),
		model.TargetID,
		model.Reason,
		moderation.ReportStatus(model.Status),
		resolvedBy,
		model.ResolvedAt,
		model.CreatedAt,
	)
}

func (m *ReportMapper) ToModel(entity *moderation.Report) *models.ReportModel {
	if entity == nil {
		return nil
	}
	var resolvedBy *uint
	if id := entity.ResolvedBy(); id != 0 {
		resolvedBy = &id
	}
	return &models.ReportModel{
		ID:         entity.ID(),
		ReporterID: entity.ReporterID(),
		TargetType: string(entity.TargetType()),
		TargetID:   entity.TargetID(),
		Reason:     entity.Reason(),
		Status:     string(entity.Status()),
		ResolvedBy: resolvedBy,
		ResolvedAt: entity.ResolvedAt(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *ReportMapper) ToEntities(ms []*models.ReportModel) []*moderation.Report {
	entities := make([]*moderation.Report, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
