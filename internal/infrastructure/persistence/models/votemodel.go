package models

import (
	"time"

	"github.com/camber-app/camber/internal/shared/constants"
)

// VoteModel is the persistence model for votes. The unique index
// enforces one vote per user per target.
type VoteModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_votes_user_target"`
	TargetType string `gorm:"not null;size:20;uniqueIndex:idx_votes_user_target;index:idx_votes_target"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_votes_user_target;index:idx_votes_target"`
	Value      int    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (VoteModel) TableName() string {
	return constants.TableVotes
}
