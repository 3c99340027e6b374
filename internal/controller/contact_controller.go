package controller

import (
	"log"
	"net/mail"
	"os"

	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/email"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message"`
}

// CreateContact ziyaretçi iletişim formunu kaydeder ve yöneticiye
// bildirim maili gönderir.
func CreateContact(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email format",
		})
	}

	contact := model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := database.GetDB().Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save contact message",
		})
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" && email.GlobalEmailService != nil {
		err := email.GlobalEmailService.SendContactNotification(
			adminEmail,
			input.Name,
			input.Email,
			input.Message,
		)
		if err != nil {
			log.Printf("Could not send contact notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent successfully.",
	})
}

// ListContacts gelen mesajları listeler (personel)
func ListContacts(c *fiber.Ctx) error {
	var contacts []model.Contact
	if err := database.GetDB().Order("created_at desc").Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch contacts",
		})
	}

	return c.JSON(contacts)
}
