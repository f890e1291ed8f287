package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/infrastructure/persistence/mappers"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/shared/logger"
)

var allowedCarOrderByFields = map[string]bool{
	"id":         true,
	"make":       true,
	"model":      true,
	"year":       true,
	"created_at": true,
	"updated_at": true,
}

type CarRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CarMapper
	logger logger.Interface
}

func NewCarRepository(db *gorm.DB, logger logger.Interface) car.Repository {
	return &CarRepositoryImpl{
		db:     db,
		mapper: mappers.NewCarMapper(),
		logger: logger,
	}
}

func (r *CarRepositoryImpl) Create(ctx context.Context, c *car.Car) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create car", "error", err, "owner_id", c.OwnerID())
		return fmt.Errorf("failed to create car: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CarRepositoryImpl) GetByID(ctx context.Context, id uint) (*car.Car, error) {
	var model models.CarModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get car by ID", "error", err, "car_id", id)
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CarRepositoryImpl) Update(ctx context.Context, c *car.Car) error {
	model := r.mapper.ToModel(c)
	result := r.db.WithContext(ctx).Model(&models.CarModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"make":       model.Make,
			"model":      model.Model,
			"year":       model.Year,
			"trim":       model.Trim,
			"nickname":   model.Nickname,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update car", "error", result.Error, "car_id", c.ID())
		return fmt.Errorf("failed to update car: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("car not found: %d", c.ID())
	}
	return nil
}

func (r *CarRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CarModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete car", "error", result.Error, "car_id", id)
		return fmt.Errorf("failed to delete car: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("car not found: %d", id)
	}
	return nil
}

func (r *CarRepositoryImpl) List(ctx context.Context, filter car.ListFilter) ([]*car.Car, int64, error) {
	var carModels []*models.CarModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CarModel{})

	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Make != "" {
		query = query.Where("make LIKE ?", "%"+filter.Make+"%")
	}
	if filter.Model != "" {
		query = query.Where("model LIKE ?", "%"+filter.Model+"%")
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count cars", "error", err)
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	query = applyOrder(query, filter.OrderBy, filter.Order, allowedCarOrderByFields)
	query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)

	if err := query.Find(&carModels).Error; err != nil {
		r.logger.Errorw("failed to list cars", "error", err)
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}

	return r.mapper.ToEntities(carModels), total, nil
}

func (r *CarRepositoryImpl) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CarModel{}).
		Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cars by owner: %w", err)
	}
	return count, nil
}
