package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/shared/constants"
)

// BuildListModel is the persistence model for build lists.
type BuildListModel struct {
	ID              uint   `gorm:"primarykey"`
	CarID           uint   `gorm:"not null;index:idx_build_lists_car"`
	OwnerID         uint   `gorm:"not null;index:idx_build_lists_owner"`
	Name            string `gorm:"not null;size:200"`
	Description     string `gorm:"type:text"`
	DescriptionHTML string `gorm:"column:description_html;type:text"`
	Visibility      string `gorm:"not null;default:public;size:20;index:idx_build_lists_visibility"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BuildListModel) TableName() string {
	return constants.TableBuildLists
}

// BuildListItemModel is the persistence model for build list items.
type BuildListItemModel struct {
	ID          uint   `gorm:"primarykey"`
	BuildListID uint   `gorm:"not null;uniqueIndex:idx_build_list_items_list_part"`
	PartID      uint   `gorm:"not null;uniqueIndex:idx_build_list_items_list_part"`
	Note        string `gorm:"size:1000"`
	CreatedAt   time.Time
}

func (BuildListItemModel) TableName() string {
	return constants.TableBuildListItems
}
