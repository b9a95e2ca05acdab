package migration

import (
	"food-diary/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Errorf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Log{}); err != nil {
		log.Errorf("Error migrating log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LogFood{}); err != nil {
		log.Errorf("Error migrating log food database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
