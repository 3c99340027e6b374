package controller

import (
	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/cache"
	"storefront_backend/pkg/database"
)

var categoryCache *cache.CategoryCache

func InitCategoryController(c *cache.CategoryCache) {
	categoryCache = c
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ListCategories kategori listesini cache üzerinden döner. Kategori
// değişiklikleri cache'i temizlemez; liste en fazla 15 dakika bayat
// kalabilir.
func ListCategories(c *fiber.Ctx) error {
	categories, err := categoryCache.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch categories",
		})
	}

	return c.JSON(categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	category := model.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := database.GetDB().Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(CategoryInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var category model.Category
	if err := database.GetDB().First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := database.GetDB().Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update category",
		})
	}

	return c.JSON(category)
}

func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.Category
	if err := database.GetDB().First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var productCount int64
	database.GetDB().Model(&model.Product{}).Where("category_id = ?", category.ID).Count(&productCount)
	if productCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category still has products",
		})
	}

	if err := database.GetDB().Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete category",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
