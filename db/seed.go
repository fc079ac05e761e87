package db

import (
	"billscan-server/entities"
	"log"

	"gorm.io/gorm"
)

// SeedDefaultCategories provisions the global default categories once.
// It is a no-op when any default row already exists.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Category{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []entities.Category{
		{Name: "Uncategorized", Color: "#9E9E9E", Icon: "label", IsDefault: true},
		{Name: "Dining", Color: "#FF9800", Icon: "restaurant", IsDefault: true},
		{Name: "Entertainment", Color: "#9C27B0", Icon: "movie", IsDefault: true},
		{Name: "Groceries", Color: "#4CAF50", Icon: "shopping_cart", IsDefault: true},
		{Name: "Health", Color: "#F44336", Icon: "favorite", IsDefault: true},
		{Name: "Shopping", Color: "#E91E63", Icon: "shopping_bag", IsDefault: true},
		{Name: "Transport", Color: "#2196F3", Icon: "directions_car", IsDefault: true},
		{Name: "Travel", Color: "#00BCD4", Icon: "flight", IsDefault: true},
		{Name: "Utilities", Color: "#607D8B", Icon: "bolt", IsDefault: true},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d default categories", len(defaults))
	return nil
}
