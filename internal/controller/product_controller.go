package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/utils/jwt"
)

type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// ListProducts tüm ürünleri yeniden eskiye listeler
func ListProducts(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.GetDB().
		Preload("Category").
		Preload("ActiveVersion").
		Order("id desc").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	return c.JSON(products)
}

// GetProduct ürün detayını getirir
func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.Product
	if err := database.GetDB().
		Preload("Category").
		Preload("ActiveVersion").
		Preload("Versions").
		First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch product",
		})
	}

	return c.JSON(product)
}

// ListCategoryProducts bir kategorinin ürünlerini listeler
func ListCategoryProducts(c *fiber.Ctx) error {
	categoryID := c.Params("category_id")

	var category model.Category
	if err := database.GetDB().First(&category, categoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var products []model.Product
	if err := database.GetDB().
		Where("category_id = ?", category.ID).
		Preload("ActiveVersion").
		Order("id desc").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"category": category,
		"products": products,
	})
}

// CreateProduct yeni ürün oluşturur
func CreateProduct(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(ProductInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var category model.Category
	if err := database.GetDB().First(&category, input.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	product := model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		UserID:      claims.UserID,
	}

	if err := database.GetDB().Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create product",
		})
	}

	database.GetDB().Preload("Category").First(&product, product.ID)

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct ürünü günceller; sadece sahibi güncelleyebilir
func UpdateProduct(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")
	input := new(ProductInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	// Yetki kontrolü
	if product.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to update this product",
		})
	}

	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		var category model.Category
		if err := database.GetDB().First(&category, input.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		product.CategoryID = input.CategoryID
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price

	if err := database.GetDB().Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product",
		})
	}

	database.GetDB().Preload("Category").Preload("ActiveVersion").First(&product, product.ID)

	return c.JSON(product)
}

// DeleteProduct ürünü ve sürümlerini siler
func DeleteProduct(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to delete this product",
		})
	}

	tx := database.GetDB().Begin()

	if err := tx.Where("product_id = ?", product.ID).Delete(&model.Version{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product versions",
		})
	}

	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
