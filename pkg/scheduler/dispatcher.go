package scheduler

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"storefront_backend/internal/model"
)

// Transport is the outbound mail sender used by dispatch cycles. A single
// call delivers the campaign to the whole recipient list; the sender
// address is transport configuration.
type Transport interface {
	SendCampaign(subject, body string, to []string) error
}

// Dispatcher executes one send cycle per job firing.
type Dispatcher struct {
	db        *gorm.DB
	transport Transport
}

func NewDispatcher(db *gorm.DB, transport Transport) *Dispatcher {
	return &Dispatcher{db: db, transport: transport}
}

// Dispatch resolves the enrolled clients and the campaign message for the
// given settings and performs one multi-recipient send. A transport failure
// aborts the cycle: the error is returned and no email log rows are
// written for that firing. On success one OK log row is appended per
// enrolled client. Enrollments whose client no longer exists are skipped,
// and a cycle with no recipients makes no transport call.
func (d *Dispatcher) Dispatch(settingsID uint) error {
	var settings model.MailingSettings
	if err := d.db.Preload("Message").First(&settings, settingsID).Error; err != nil {
		return fmt.Errorf("could not load mailing settings %d: %v", settingsID, err)
	}

	if settings.Message == nil {
		return fmt.Errorf("mailing settings %d has no message attached", settingsID)
	}

	var enrollments []model.MailingClient
	if err := d.db.Preload("Client").Where("settings_id = ?", settingsID).Find(&enrollments).Error; err != nil {
		return fmt.Errorf("could not load enrollments for settings %d: %v", settingsID, err)
	}

	// Silinmiş müşterilerin kayıtlarını atla.
	active := make([]model.MailingClient, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if enrollment.Client.ID == 0 {
			log.Printf("Skipping enrollment %d for settings %d: client %d no longer exists", enrollment.ID, settingsID, enrollment.ClientID)
			continue
		}
		active = append(active, enrollment)
	}

	if len(active) == 0 {
		log.Printf("Mailing settings %d has no enrolled clients, skipping send", settingsID)
		return nil
	}

	recipients := make([]string, 0, len(active))
	for _, enrollment := range active {
		recipients = append(recipients, enrollment.Client.Email)
	}

	if err := d.transport.SendCampaign(settings.Message.Subject, settings.Message.MessageContent, recipients); err != nil {
		return err
	}

	for _, enrollment := range active {
		clientID := enrollment.ClientID
		attempt := model.EmailLog{
			Status:     model.EmailLogStatusOK,
			ClientID:   &clientID,
			SettingsID: &settings.ID,
		}
		if err := d.db.Create(&attempt).Error; err != nil {
			return fmt.Errorf("could not record email log for settings %d: %v", settingsID, err)
		}
	}

	return nil
}
