package configs

import (
	"log"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

// SeedMenu loads the sample menu for local development. Skipped entirely as
// soon as any category exists, so it never touches a populated database.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("database already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		coffee := entity.Category{Name: "Coffee", Position: 1}
		pastries := entity.Category{Name: "Pastries", Position: 2}
		if err := tx.Create(&coffee).Error; err != nil {
			return err
		}
		if err := tx.Create(&pastries).Error; err != nil {
			return err
		}

		items := []entity.MenuItem{
			{Name: "Espresso", Description: "Rich single shot", PriceCents: 250, Available: true, CategoryID: coffee.ID},
			{Name: "Cappuccino", Description: "Espresso with steamed milk", PriceCents: 350, Available: true, CategoryID: coffee.ID},
			{Name: "Blueberry Muffin", Description: "Baked fresh daily", PriceCents: 300, Available: true, CategoryID: pastries.ID},
			{Name: "Almond Croissant", Description: "Buttery and flaky", PriceCents: 420, Available: true, CategoryID: pastries.ID},
		}
		return tx.Create(&items).Error
	})
}
