package models

import (
	"time"

	"github.com/camber-app/camber/internal/shared/constants"
)

// PlanModel is the persistence model for subscription plans.
type PlanModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"not null;size:100"`
	Slug            string `gorm:"uniqueIndex;not null;size:50"`
	PriceCents      int64  `gorm:"not null;default:0"`
	MaxCars         int    `gorm:"not null;default:0"`
	MaxBuildLists   int    `gorm:"not null;default:0"`
	MaxItemsPerList int    `gorm:"not null;default:0"`
	Active          bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
