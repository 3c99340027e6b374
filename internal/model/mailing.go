package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Mailing Frequency
type MailingFrequency string

const (
	FrequencyDaily   MailingFrequency = "daily"
	FrequencyWeekly  MailingFrequency = "weekly"
	FrequencyMonthly MailingFrequency = "monthly"
)

// Mailing Status
type MailingStatus string

const (
	MailingStatusCreated   MailingStatus = "created"
	MailingStatusRunning   MailingStatus = "running"
	MailingStatusCompleted MailingStatus = "completed"
)

// Email Log Status
type EmailLogStatus string

const (
	EmailLogStatusOK     EmailLogStatus = "OK"
	EmailLogStatusFailed EmailLogStatus = "FAILED"
)

func ValidFrequency(f MailingFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type MailingMessage struct {
	gorm.Model
	Subject        string `json:"subject" gorm:"not null"`
	MessageContent string `json:"message_content" gorm:"type:text"`
}

type Client struct {
	gorm.Model
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Comment  string `json:"comment" gorm:"type:text"`
}

type MailingSettings struct {
	gorm.Model
	StartTime time.Time        `json:"start_time" gorm:"not null"`
	EndTime   time.Time        `json:"end_time" gorm:"not null"`
	Frequency MailingFrequency `json:"frequency" gorm:"not null"`
	Status    MailingStatus    `json:"status" gorm:"default:'created'"`

	MessageID *uint `json:"message_id"`
	ClientID  *uint `json:"client_id"`

	// İlişkiler
	Message     *MailingMessage `json:"message" gorm:"foreignKey:MessageID"`
	Client      *Client         `json:"client" gorm:"foreignKey:ClientID"`
	Enrollments []MailingClient `json:"enrollments" gorm:"foreignKey:SettingsID;constraint:OnDelete:CASCADE"`
}

// MailingClient bir kampanyaya kayıtlı tek bir alıcıyı temsil eder.
type MailingClient struct {
	gorm.Model
	ClientID   uint  `json:"client_id" gorm:"not null"`
	SettingsID uint  `json:"settings_id" gorm:"not null;index"`
	MessageID  *uint `json:"message_id"`

	Client   Client          `json:"client" gorm:"foreignKey:ClientID"`
	Settings MailingSettings `json:"-" gorm:"foreignKey:SettingsID"`
	Message  *MailingMessage `json:"-" gorm:"foreignKey:MessageID"`
}

// EmailLog is an append-only delivery attempt record.
type EmailLog struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	DatetimeAttempt time.Time      `json:"datetime_attempt" gorm:"autoCreateTime"`
	Status          EmailLogStatus `json:"status" gorm:"not null"`
	ClientID        *uint          `json:"client_id"`
	SettingsID      *uint          `json:"settings_id"`

	Client   *Client          `json:"client" gorm:"foreignKey:ClientID"`
	Settings *MailingSettings `json:"-" gorm:"foreignKey:SettingsID"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}

// TransitionTo enforces the settings lifecycle: created -> running ->
// completed, with completed terminal. Nothing in the system triggers the
// running -> completed transition automatically.
func (m *MailingSettings) TransitionTo(next MailingStatus) error {
	switch {
	case m.Status == MailingStatusCreated && next == MailingStatusRunning:
	case m.Status == MailingStatusRunning && next == MailingStatusCompleted:
	default:
		return fmt.Errorf("invalid status transition %s -> %s", m.Status, next)
	}
	m.Status = next
	return nil
}
