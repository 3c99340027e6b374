package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront_backend/internal/model"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/scheduler"
)

var mailingRegistry *scheduler.Registry

func InitMailingController(r *scheduler.Registry) {
	mailingRegistry = r
}

type MailingSettingsInput struct {
	StartTime time.Time              `json:"start_time" validate:"required"`
	EndTime   time.Time              `json:"end_time" validate:"required"`
	Frequency model.MailingFrequency `json:"frequency" validate:"required"`
	MessageID *uint                  `json:"message_id"`
	ClientID  *uint                  `json:"client_id"`
}

func ListMailingSettings(c *fiber.Ctx) error {
	var settings []model.MailingSettings
	if err := database.GetDB().
		Preload("Message").
		Order("created_at desc").
		Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch mailing settings",
		})
	}

	return c.JSON(settings)
}

func GetMailingSettings(c *fiber.Ctx) error {
	id := c.Params("id")

	var settings model.MailingSettings
	if err := database.GetDB().
		Preload("Message").
		Preload("Enrollments.Client").
		First(&settings, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing settings not found",
		})
	}

	return c.JSON(settings)
}

// CreateMailingSettings yeni kampanya ayarı oluşturur. Frekans burada
// doğrulanır ki zamanlayıcı hiç bilmediği bir değerle karşılaşmasın.
func CreateMailingSettings(c *fiber.Ctx) error {
	input := new(MailingSettingsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if !model.ValidFrequency(input.Frequency) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":             "Invalid frequency value",
			"valid_frequencies": []model.MailingFrequency{model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly},
		})
	}

	settings := model.MailingSettings{
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Frequency: input.Frequency,
		Status:    model.MailingStatusCreated,
		MessageID: input.MessageID,
		ClientID:  input.ClientID,
	}

	if err := database.GetDB().Create(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create mailing settings",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(settings)
}

// UpdateMailingSettings kampanya ayarını günceller. Ayar çalışır
// durumdaysa iş yeniden kaydedilir; aynı ayar için tek iş kalır.
func UpdateMailingSettings(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(MailingSettingsInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if !model.ValidFrequency(input.Frequency) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid frequency value",
		})
	}

	var settings model.MailingSettings
	if err := database.GetDB().First(&settings, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing settings not found",
		})
	}

	settings.StartTime = input.StartTime
	settings.EndTime = input.EndTime
	settings.Frequency = input.Frequency
	settings.MessageID = input.MessageID
	settings.ClientID = input.ClientID

	if err := database.GetDB().Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update mailing settings",
		})
	}

	if settings.Status == model.MailingStatusRunning {
		mailingRegistry.Register(settings)
	}

	return c.JSON(settings)
}

// ActivateMailingSettings ayarı created -> running durumuna geçirir ve
// zamanlayıcıya kaydeder.
func ActivateMailingSettings(c *fiber.Ctx) error {
	id := c.Params("id")

	var settings model.MailingSettings
	if err := database.GetDB().First(&settings, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing settings not found",
		})
	}

	if err := settings.TransitionTo(model.MailingStatusRunning); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := database.GetDB().Model(&settings).Update("status", settings.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update status",
		})
	}

	mailingRegistry.Register(settings)

	return c.JSON(fiber.Map{
		"message":  "Mailing activated",
		"settings": settings,
	})
}

func DeleteMailingSettings(c *fiber.Ctx) error {
	id := c.Params("id")

	var settings model.MailingSettings
	if err := database.GetDB().First(&settings, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mailing settings not found",
		})
	}

	tx := database.GetDB().Begin()

	if err := tx.Where("settings_id = ?", settings.ID).Delete(&model.MailingClient{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete enrollments",
		})
	}

	if err := tx.Delete(&settings).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete mailing settings",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListEmailLogs teslim denemelerini yeniden eskiye listeler
func ListEmailLogs(c *fiber.Ctx) error {
	var logs []model.EmailLog
	query := database.GetDB().Preload("Client").Order("datetime_attempt desc")

	if settingsID := c.Query("settings_id"); settingsID != "" {
		query = query.Where("settings_id = ?", settingsID)
	}

	if err := query.Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch email logs",
		})
	}

	return c.JSON(logs)
}
