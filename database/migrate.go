package database

import (
	"fmt"

	"github.com/yeremiapane/review-app/models"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the customers, items and reviews tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// Seed inserts a small fixture set when no customer exists yet. It reports
// whether anything was written.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		utils.InfoLogger.Printf("Seed skipped: %d customers already present", count)
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		customers := []models.Customer{
			{Name: models.Ptr("Tal Yuri")},
			{Name: models.Ptr("Phil Vanderbilt")},
			{Name: models.Ptr("Ada Lovelace")},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		items := []models.Item{
			{Name: models.Ptr("Laptop Backpack"), Price: models.Ptr(49.99)},
			{Name: models.Ptr("Insulated Coffee Mug"), Price: models.Ptr(9.99)},
			{Name: models.Ptr("Mechanical Keyboard"), Price: models.Ptr(89.5)},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		reviews := []models.Review{
			{Comment: "Zipper broke the first week", CustomerID: customers[0].ID, ItemID: items[0].ID},
			{Comment: "Keeps coffee hot all morning", CustomerID: customers[0].ID, ItemID: items[1].ID},
			{Comment: "Great", CustomerID: customers[2].ID, ItemID: items[1].ID},
			{Comment: "Loud but lovely", CustomerID: customers[1].ID, ItemID: items[2].ID},
		}
		return tx.Create(&reviews).Error
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	utils.InfoLogger.Println("Seed data inserted.")
	return true, nil
}
