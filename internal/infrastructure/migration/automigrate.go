package migration

import (
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CarModel{},
		&models.BuildListModel{},
		&models.BuildListItemModel{},
		&models.PartModel{},
		&models.VoteModel{},
		&models.ReportModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
	}
}
