package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/utils/image"
	"storefront_backend/pkg/utils/jwt"
	"storefront_backend/pkg/utils/storage"
	"storefront_backend/pkg/utils/validation"
)

// UploadProductPreview ürün için önizleme görseli yükler. Görsel webp'e
// çevrilip S3'e kaydedilir, eski önizleme varsa silinir.
func UploadProductPreview(c *fiber.Ctx) error {
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
			"error": "Not authorized to upload a preview for this product",
		})
	}

	file, err := c.FormFile("preview")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	buf, contentType, err := image.ProcessPreview(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadPreview("products", product.ID, buf, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload preview",
		})
	}

	if product.Preview != "" {
		if err := storage.DeletePreview(product.Preview); err != nil {
			log.Printf("Could not delete old preview: %v", err)
		}
	}

	product.Preview = url
	if err := database.GetDB().Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save preview URL",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Preview uploaded successfully",
		"preview": url,
	})
}

// UploadBlogPreview blog yazısı için önizleme görseli yükler.
func UploadBlogPreview(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	file, err := c.FormFile("preview")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	buf, contentType, err := image.ProcessPreview(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadPreview("blog", post.ID, buf, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload preview",
		})
	}

	if post.Preview != "" {
		if err := storage.DeletePreview(post.Preview); err != nil {
			log.Printf("Could not delete old preview: %v", err)
		}
	}

	post.Preview = url
	if err := database.GetDB().Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save preview URL",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Preview uploaded successfully",
		"preview": url,
	})
}
