package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
)

// SeedDefaultPlans inserts the standard plan lineup on a fresh database
func SeedDefaultPlans() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000001_seed_default_plans",
		Migrate: func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Plan{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}

			plans := []models.Plan{
				{Name: "Day Pass", Description: "Single day access", DurationDays: 1, Price: 50, IsActive: true},
				{Name: "Weekly", Description: "Seven days of access", DurationDays: 7, Price: 150, IsActive: true},
				{Name: "Monthly", Description: "Thirty days of access", DurationDays: 30, Price: 500, IsActive: true},
				{Name: "Annual", Description: "A full year of access", DurationDays: 365, Price: 4800, IsActive: true},
			}
			return tx.Create(&plans).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Where("name IN ?", []string{"Day Pass", "Weekly", "Monthly", "Annual"}).
				Delete(&models.Plan{}).Error
		},
	}
}
