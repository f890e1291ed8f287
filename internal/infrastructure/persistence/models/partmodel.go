package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/shared/constants"
)

// PartModel is the persistence model for catalog parts.
type PartModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:200;index:idx_parts_name"`
	Brand       string `gorm:"size:100;index:idx_parts_brand"`
	Category    string `gorm:"not null;size:30;index:idx_parts_category"`
	Description string `gorm:"type:text"`
	PriceCents  int64  `gorm:"not null;default:0"`
	CreatedBy   uint   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (PartModel) TableName() string {
	return constants.TableParts
}
