package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/infrastructure/persistence/mappers"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/shared/logger"
)

var allowedBuildListOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

type BuildListRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.BuildListMapper
	logger logger.Interface
}

func NewBuildListRepository(db *gorm.DB, logger logger.Interface) buildlist.Repository {
	return &BuildListRepositoryImpl{
		db:     db,
		mapper: mappers.NewBuildListMapper(),
		logger: logger,
	}
}

func (r *BuildListRepositoryImpl) Create(ctx context.Context, list *buildlist.BuildList) error {
	model := r.mapper.ToModel(list)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create build list", "error", err, "owner_id", list.OwnerID())
		return fmt.Errorf("failed to create build list: %w", err)
	}
	return list.SetID(model.ID)
}

func (r *BuildListRepositoryImpl) GetByID(ctx context.Context, id uint) (*buildlist.BuildList, error) {
	var model models.BuildListModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get build list by ID", "error", err, "build_list_id", id)
		return nil, fmt.Errorf("failed to get build list: %w", err)
	}

	var itemModels []*models.BuildListItemModel
	if err := r.db.WithContext(ctx).
		Where("build_list_id = ?", id).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to load build list items", "error", err, "build_list_id", id)
		return nil, fmt.Errorf("failed to load build list items: %w", err)
	}

	return r.mapper.ToEntity(&model, itemModels), nil
}

func (r *BuildListRepositoryImpl) Update(ctx context.Context, list *buildlist.BuildList) error {
	model := r.mapper.ToModel(list)
	result := r.db.WithContext(ctx).Model(&models.BuildListModel{}).
		Where("id = ?", list.ID()).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"description":      model.Description,
			"description_html": model.DescriptionHTML,
			"visibility":       model.Visibility,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update build list", "error", result.Error, "build_list_id", list.ID())
		return fmt.Errorf("failed to update build list: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("build list not found: %d", list.ID())
	}
	return nil
}

func (r *BuildListRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("build_list_id = ?", id).Delete(&models.BuildListItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete build list items: %w", err)
		}
		result := tx.Delete(&models.BuildListModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete build list: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("build list not found: %d", id)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete build list", "error", err, "build_list_id", id)
	}
	return err
}

func (r *BuildListRepositoryImpl) List(ctx context.Context, filter buildlist.ListFilter) ([]*buildlist.BuildList, int64, error) {
	var listModels []*models.BuildListModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.BuildListModel{})

	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.CarID != 0 {
		query = query.Where("car_id = ?", filter.CarID)
	}
	if filter.Visibility != "" {
		query = query.Where("visibility = ?", string(filter.Visibility))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count build lists", "error", err)
		return nil, 0, fmt.Errorf("failed to count build lists: %w", err)
	}

	query = applyOrder(query, filter.OrderBy, filter.Order, allowedBuildListOrderByFields)
	query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)

	if err := query.Find(&listModels).Error; err != nil {
		r.logger.Errorw("failed to list build lists", "error", err)
		return nil, 0, fmt.Errorf("failed to list build lists: %w", err)
	}

	lists := make([]*buildlist.BuildList, 0, len(listModels))
	for _, model := range listModels {
		lists = append(lists, r.mapper.ToEntity(model, nil))
	}
	return lists, total, nil
}

func (r *BuildListRepositoryImpl) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BuildListModel{}).
		Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count build lists by owner: %w", err)
	}
	return count, nil
}

func (r *BuildListRepositoryImpl) AddItem(ctx context.Context, item *buildlist.Item) error {
	model := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to add build list item", "error", err, "build_list_id", item.BuildListID())
		return fmt.Errorf("failed to add build list item: %w", err)
	}
	return item.SetID(model.ID)
}

func (r *BuildListRepositoryImpl) RemoveItem(ctx context.Context, buildListID, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND build_list_id = ?", itemID, buildListID).
		Delete(&models.BuildListItemModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to remove build list item", "error", result.Error, "item_id", itemID)
		return fmt.Errorf("failed to remove build list item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("build list item not found: %d", itemID)
	}
	return nil
}

func (r *BuildListRepositoryImpl) CountItems(ctx context.Context, buildListID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BuildListItemModel{}).
		Where("build_list_id = ?", buildListID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count build list items: %w", err)
	}
	return count, nil
}
