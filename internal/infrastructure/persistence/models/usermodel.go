package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/shared/constants"
)

// UserModel is the persistence model for users. It is the
// anti-corruption layer between the domain entity and the database.
type UserModel struct {
	ID                    uint    `gorm:"primarykey"`
	Email                 string  `gorm:"uniqueIndex;not null;size:255"`
	Name                  string  `gorm:"not null;size:100"`
	PasswordHash          string  `gorm:"not null;size:255"`
	Role                  string  `gorm:"not null;default:user;size:20"`
	Status                string  `gorm:"not null;default:active;size:20"`
	EmailVerified         bool    `gorm:"default:false"`
	VerificationToken     *string `gorm:"size:255;index:idx_users_verification_token"`
	VerificationExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
