package migrate

import (
	"Menu-Planner-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.WeekPlan{},
		&entities.WeekPlanEntry{},
		&entities.ShoppingCheck{},
		&entities.ExtraItem{},
		&entities.WeekExtraItem{},
	)
}
