package seed

import (
	"log"

	"gorm.io/gorm"

	"storefront_backend/internal/model"
)

func SeedCategories(db *gorm.DB) {
	categories := []model.Category{
		{
			Name:        "Uncategorized",
			Description: "Products without a dedicated category",
		},
		{
			Name:        "Electronics",
			Description: "Consumer electronics and accessories",
		},
		{
			Name:        "Home & Garden",
			Description: "Household goods and garden supplies",
		},
	}

	for _, category := range categories {
		result := db.FirstOrCreate(&category, model.Category{Name: category.Name})
		if result.Error != nil {
			log.Printf("Error creating category %s: %v", category.Name, result.Error)
		}
	}

	log.Println("Default categories seeded successfully!")
}
