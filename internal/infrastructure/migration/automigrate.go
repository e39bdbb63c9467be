package migration

import (
	"chefviral/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.BusinessProfileModel{},
		&models.ProductModel{},
		&models.GeneratedContentModel{},
		&models.AnalyticsEventModel{},
	}
}
