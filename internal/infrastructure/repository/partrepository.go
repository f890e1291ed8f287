package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/infrastructure/persistence/mappers"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/shared/logger"
)

var allowedPartOrderByFields = map[string]bool{
	"id":          true,
	"name":        true,
	"brand":       true,
	"category":    true,
	"price_cents": true,
	"created_at":  true,
}

type PartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.PartMapper
	logger logger.Interface
}

func NewPartRepository(db *gorm.DB, logger logger.Interface) part.Repository {
	return &PartRepositoryImpl{
		db:     db,
		mapper: mappers.NewPartMapper(),
		logger: logger,
	}
}

func (r *PartRepositoryImpl) Create(ctx context.Context, p *part.Part) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create part", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create part: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *PartRepositoryImpl) GetByID(ctx context.Context, id uint) (*part.Part, error) {
	var model models.PartModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get part by ID", "error", err, "part_id", id)
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *PartRepositoryImpl) Update(ctx context.Context, p *part.Part) error {
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Model(&models.PartModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"brand":       model.Brand,
			"category":    model.Category,
			"description": model.Description,
			"price_cents": model.PriceCents,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update part", "error", result.Error, "part_id", p.ID())
		return fmt.Errorf("failed to update part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("part not found: %d", p.ID())
	}
	return nil
}

func (r *PartRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PartModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete part", "error", result.Error, "part_id", id)
		return fmt.Errorf("failed to delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("part not found: %d", id)
	}
	return nil
}

func (r *PartRepositoryImpl) List(ctx context.Context, filter part.ListFilter) ([]*part.Part, int64, error) {
	var partModels []*models.PartModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PartModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR brand LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count parts", "error", err)
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	query = applyOrder(query, filter.OrderBy, filter.Order, allowedPartOrderByFields)
	query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)

	if err := query.Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to list parts", "error", err)
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}

	return r.mapper.ToEntities(partModels), total, nil
}
