package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/shared/constants"
)

// CarModel is the persistence model for cars.
type CarModel struct {
	ID        uint   `gorm:"primarykey"`
	OwnerID   uint   `gorm:"not null;index:idx_cars_owner"`
	Make      string `gorm:"not null;size:100"`
	Model     string `gorm:"not null;size:100"`
	Year      int    `gorm:"not null"`
	Trim      string `gorm:"size:100"`
	Nickname  string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CarModel) TableName() string {
	return constants.TableCars
}
