package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/infrastructure/persistence/mappers"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/shared/logger"
)

var allowedReportOrderByFields = map[string]bool{
	"id":         true,
	"status":     true,
	"created_at": true,
}

type VoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.VoteMapper
	logger logger.Interface
}

func NewVoteRepository(db *gorm.DB, logger logger.Interface) moderation.VoteRepository {
	return &VoteRepositoryImpl{
		db:     db,
		mapper: mappers.NewVoteMapper(),
		logger: logger,
	}
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *moderation.Vote) error {
	model := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create vote", "error", err, "user_id", vote.UserID())
		return fmt.Errorf("failed to create vote: %w", err)
	}
	return vote.SetID(model.ID)
}

func (r *VoteRepositoryImpl) GetByUserAndTarget(ctx context.Context, userID uint, targetType moderation.TargetType, targetID uint) (*moderation.Vote, error) {
	var model models.VoteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, string(targetType), targetID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get vote", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *VoteRepositoryImpl) Update(ctx context.Context, vote *moderation.Vote) error {
	result := r.db.WithContext(ctx).Model(&models.VoteModel{}).
		Where("id = ?", vote.ID()).
		Updates(map[string]interface{}{
			"value":      vote.Value(),
			"updated_at": vote.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update vote", "error", result.Error, "vote_id", vote.ID())
		return fmt.Errorf("failed to update vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vote not found: %d", vote.ID())
	}
	return nil
}

func (r *VoteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VoteModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete vote", "error", result.Error, "vote_id", id)
		return fmt.Errorf("failed to delete vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vote not found: %d", id)
	}
	return nil
}

func (r *VoteRepositoryImpl) Summary(ctx context.Context, targetType moderation.TargetType, targetID uint) (*moderation.VoteSummary, error) {
	var row struct {
		Upvotes   int64
		Downvotes int64
	}
	err := r.db.WithContext(ctx).Model(&models.VoteModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN value = 1 THEN 1 ELSE 0 END), 0) AS upvotes, "+
				"COALESCE(SUM(CASE WHEN value = -1 THEN 1 ELSE 0 END), 0) AS downvotes").
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Scan(&row).Error
	if err != nil {
		r.logger.Errorw("failed to summarize votes", "error", err, "target_id", targetID)
		return nil, fmt.Errorf("failed to summarize votes: %w", err)
	}
	return &moderation.VoteSummary{
		TargetType: targetType,
		TargetID:   targetID,
		Upvotes:    row.Upvotes,
		Downvotes:  row.Downvotes,
	}, nil
}

type ReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.ReportMapper
	logger logger.Interface
}

func NewReportRepository(db *gorm.DB, logger logger.Interface) moderation.ReportRepository {
	return &ReportRepositoryImpl{
		db:     db,
		mapper: mappers.NewReportMapper(),
		logger: logger,
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *moderation.Report) error {
	model := r.mapper.ToModel(report)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create report", "error", err, "reporter_id", report.ReporterID())
		return fmt.Errorf("failed to create report: %w", err)
	}
	return report.SetID(model.ID)
}

func (r *ReportRepositoryImpl) GetByID(ctx context.Context, id uint) (*moderation.Report, error) {
	var model models.ReportModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get report by ID", "error", err, "report_id", id)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, report *moderation.Report) error {
	model := r.mapper.ToModel(report)
	result := r.db.WithContext(ctx).Model(&models.ReportModel{}).
		Where("id = ?", report.ID()).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"resolved_by": model.ResolvedBy,
			"resolved_at": model.ResolvedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update report", "error", result.Error, "report_id", report.ID())
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("report not found: %d", report.ID())
	}
	return nil
}

func (r *ReportRepositoryImpl) List(ctx context.Context, filter moderation.ReportFilter) ([]*moderation.Report, int64, error) {
	var reportModels []*models.ReportModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ReportModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", string(filter.TargetType))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count reports", "error", err)
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query = applyOrder(query, filter.OrderBy, filter.Order, allowedReportOrderByFields)
	query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)

	if err := query.Find(&reportModels).Error; err != nil {
		r.logger.Errorw("failed to list reports", "error", err)
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	return r.mapper.ToEntities(reportModels), total, nil
}

// HasOpenReport reports whether the reporter already has an unresolved
// report on the given target.
func (r *ReportRepositoryImpl) HasOpenReport(ctx context.Context, reporterID uint, targetType moderation.TargetType, targetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReportModel{}).
		Where("reporter_id = ? AND target_type = ? AND target_id = ? AND status = ?",
			reporterID, string(targetType), targetID, string(moderation.ReportStatusOpen)).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check open report", "error", err, "reporter_id", reporterID)
		return false, fmt.Errorf("failed to check open report: %w", err)
	}
	return count > 0, nil
}

// FlaggedTargets aggregates open reports filed inside the query window,
// joined with vote totals, most-reported first. A target is flagged when
// the report count reaches the threshold, or when it has votes and the
// reports reach the configured ratio of its vote total.
func (r *ReportRepositoryImpl) FlaggedTargets(ctx context.Context, query moderation.FlaggedQuery) ([]*moderation.FlaggedTarget, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	window := query.Window
	if window <= 0 {
		window = 30 * 24 * time.Hour
	}
	cutoff := time.Now().Add(-window)

	having := "COUNT(*) >= ?"
	args := []interface{}{string(moderation.ReportStatusOpen), cutoff, query.MinOpenReports}
	if query.MinReportVoteRatio > 0 {
		having += ` OR (COALESCE(vt.upvotes, 0) + COALESCE(vt.downvotes, 0) > 0
		        AND COUNT(*) * 1.0 >= ? * (COALESCE(vt.upvotes, 0) + COALESCE(vt.downvotes, 0)))`
		args = append(args, query.MinReportVoteRatio)
	}
	args = append(args, limit)

	var rows []struct {
		TargetType  string
		TargetID    uint
		OpenReports int64
		Upvotes     int64
		Downvotes   int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT rp.target_type,
		       rp.target_id,
		       COUNT(*) AS open_reports,
		       COALESCE(vt.upvotes, 0) AS upvotes,
		       COALESCE(vt.downvotes, 0) AS downvotes
		FROM reports rp
		LEFT JOIN (
		    SELECT target_type,
		           target_id,
		           SUM(CASE WHEN value = 1 THEN 1 ELSE 0 END) AS upvotes,
		           SUM(CASE WHEN value = -1 THEN 1 ELSE 0 END) AS downvotes
		    FROM votes
		    GROUP BY target_type, target_id
		) vt ON vt.target_type = rp.target_type AND vt.target_id = rp.target_id
		WHERE rp.status = ? AND rp.created_at >= ?
		GROUP BY rp.target_type, rp.target_id, vt.upvotes, vt.downvotes
		HAVING `+having+`
		ORDER BY open_reports DESC, rp.target_id ASC
		LIMIT ?`,
		args...,
	).Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to query flagged targets", "error", err)
		return nil, fmt.Errorf("failed to query flagged targets: %w", err)
	}

	targets := make([]*moderation.FlaggedTarget, 0, len(rows))
	for _, row := range rows {
		targets = append(targets, &moderation.FlaggedTarget{
			TargetType:  moderation.TargetType(row.TargetType),
			TargetID:    row.TargetID,
			OpenReports: row.OpenReports,
			Upvotes:     row.Upvotes,
			Downvotes:   row.Downvotes,
		})
	}
	return targets, nil
}
