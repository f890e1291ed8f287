package models

import (
	"time"

	"github.com/camber-app/camber/internal/shared/constants"
)

// ReportModel is the persistence model for content reports.
type ReportModel struct {
	ID         uint   `gorm:"primarykey"`
	ReporterID uint   `gorm:"not null;index:idx_reports_reporter"`
	TargetType string `gorm:"not null;size:20;index:idx_reports_target"`
	TargetID   uint   `gorm:"not null;index:idx_reports_target"`
	Reason     string `gorm:"not null;size:2000"`
	Status     string `gorm:"not null;default:open;size:20;index:idx_reports_status"`
	ResolvedBy *uint
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

func (ReportModel) TableName() string {
	return constants.TableReports
}
