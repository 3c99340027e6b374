package controller

import (
	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/utils/jwt"
)

type VersionInput struct {
	VersionNumber int    `json:"version_number" validate:"required"`
	VersionName   string `json:"version_name"`
	IsCurrent     bool   `json:"is_current"`
}

// CreateVersion bir ürüne yeni sürüm ekler. is_current işaretliyse önceki
// güncel sürüm aynı transaction içinde düşürülür.
func CreateVersion(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	productID := c.Params("product_id")

	var product model.Product
	if err := database.GetDB().First(&product, productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to add versions to this product",
		})
	}

	input := new(VersionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	version := model.Version{
		ProductID:     product.ID,
		VersionNumber: input.VersionNumber,
		VersionName:   input.VersionName,
	}

	if err := database.GetDB().Create(&version).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create version",
		})
	}

	if input.IsCurrent {
		if err := model.PromoteVersion(database.GetDB(), &product, &version); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not promote version",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(version)
}

// PromoteVersion mevcut bir sürümü güncel sürüm yapar.
func PromoteVersion(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	versionID := c.Params("id")

	var version model.Version
	if err := database.GetDB().First(&version, versionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Version not found",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, version.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to promote versions of this product",
		})
	}

	if err := model.PromoteVersion(database.GetDB(), &product, &version); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not promote version",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Version promoted successfully",
		"version": version,
	})
}
