package controller

import (
	"net/mail"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
)

type ClientInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Comment  string `json:"comment"`
}

type MessageInput struct {
	Subject        string `json:"subject" validate:"required"`
	MessageContent string `json:"message_content"`
}

type EnrollInput struct {
	ClientID  uint  `json:"client_id" validate:"required"`
	MessageID *uint `json:"message_id"`
}

func ListClients(c *fiber.Ctx) error {
	var clients []model.Client
	if err := database.GetDB().Order("full_name").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch clients",
		})
	}

	return c.JSON(clients)
}

func CreateClient(c *fiber.Ctx) error {
	input := new(ClientInput)
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

	client := model.Client{
		FullName: input.FullName,
		Email:    input.Email,
		Comment:  input.Comment,
	}

	if err := database.GetDB().Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create client",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(ClientInput)

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

	var client model.Client
	if err := database.GetDB().First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	client.FullName = input.FullName
	client.Email = input.Email
	client.Comment = input.Comment

	if err := database.GetDB().Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update client",
		})
	}

	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")

	var client model.Client
	if err := database.GetDB().First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	tx := database.GetDB().Begin()

	if err := tx.Where("client_id = ?", client.ID).Delete(&model.MailingClient{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete enrollments",
		})
	}

	if err := tx.Delete(&client).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete client",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func ListMailingMessages(c *fiber.Ctx) error {
	var messages []model.MailingMessage
	if err := database.GetDB().Order("created_at desc").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch mailing messages",
		})
	}

	return c.JSON(messages)
}

func CreateMailingMessage(c *fiber.Ctx) error {
	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	message := model.MailingMessage{
		Subject:        input.Subject,
		MessageContent: input.MessageContent,
	}

	if err := database.GetDB().Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create mailing message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func UpdateMailingMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(MessageInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var message model.MailingMessage
	if err := database.GetDB().First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing message not found",
		})
	}

	message.Subject = input.Subject
	message.MessageContent = input.MessageContent

	if err := database.GetDB().Save(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update mailing message",
		})
	}

	return c.JSON(message)
}

// EnrollClient bir müşteriyi kampanyaya kaydeder.
func EnrollClient(c *fiber.Ctx) error {
	settingsIDStr := c.Params("id")
	settingsID, err := strconv.ParseUint(settingsIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid settings ID",
		})
	}

	var settings model.MailingSettings
	if err := database.GetDB().First(&settings, settingsID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing settings not found",
		})
	}

	input := new(EnrollInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var client model.Client
	if err := database.GetDB().First(&client, input.ClientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	var existing model.MailingClient
	if err := database.GetDB().
		Where("settings_id = ? AND client_id = ?", settings.ID, client.ID).
		First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Client already enrolled in this mailing",
		})
	}

	enrollment := model.MailingClient{
		ClientID:   client.ID,
		SettingsID: settings.ID,
		MessageID:  input.MessageID,
	}

	if err := database.GetDB().Create(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not enroll client",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// UnenrollClient kaydı kaldırır.
func UnenrollClient(c *fiber.Ctx) error {
	settingsID := c.Params("id")
	clientID := c.Params("client_id")

	result := database.GetDB().
		Where("settings_id = ? AND client_id = ?", settingsID, clientID).
		Delete(&model.MailingClient{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not remove enrollment",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Enrollment not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
