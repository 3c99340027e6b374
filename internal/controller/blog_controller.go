package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
)

type BlogPostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ListBlogPosts sadece yayınlanmış yazıları listeler
func ListBlogPosts(c *fiber.Ctx) error {
	var posts []model.BlogPost
	if err := database.GetDB().
		Where("is_published = ?", true).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog posts",
		})
	}

	return c.JSON(posts)
}

// GetBlogPost yazı detayını getirir ve görüntülenme sayısını bir artırır.
func GetBlogPost(c *fiber.Ctx) error {
	postSlug := c.Params("slug")

	var post model.BlogPost
	if err := database.GetDB().Where("slug = ?", postSlug).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog post",
		})
	}

	if err := database.GetDB().Model(&post).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update view count",
		})
	}
	post.ViewsCount++

	return c.JSON(post)
}

// CreateBlogPost yeni yazı oluşturur; slug başlıktan türetilir ve yazı
// yayınlanmış olarak kaydedilir.
func CreateBlogPost(c *fiber.Ctx) error {
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	post := model.BlogPost{
		Title:   input.Title,
		Content: input.Content,
	}

	if err := database.GetDB().Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create blog post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateBlogPost yazıyı günceller; slug yeni başlıktan tekrar türetilir.
func UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BlogPostInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	post.Title = input.Title
	post.Content = input.Content

	if err := database.GetDB().Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update blog post",
		})
	}

	return c.JSON(post)
}

func DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	if err := database.GetDB().Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete blog post",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
