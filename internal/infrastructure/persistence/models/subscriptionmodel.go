package models

import (
	"time"

	"github.com/camber-app/camber/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions.
type SubscriptionModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_subscriptions_user"`
	PlanID     uint   `gorm:"not null"`
	Status     string `gorm:"not null;default:active;size:20;index:idx_subscriptions_status"`
	StartedAt  time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
