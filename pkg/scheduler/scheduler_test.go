package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_backend/internal/model"
)

type sentCampaign struct {
	Subject    string
	Body       string
	Recipients []string
}

type fakeTransport struct {
	calls []sentCampaign
	err   error
}

func (f *fakeTransport) SendCampaign(subject, body string, to []string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, sentCampaign{Subject: subject, Body: body, Recipients: to})
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.MailingMessage{},
		&model.Client{},
		&model.MailingSettings{},
		&model.MailingClient{},
		&model.EmailLog{},
	))

	return db
}

func runningSettings(id uint) model.MailingSettings {
	return model.MailingSettings{
		Model:     gorm.Model{ID: id},
		StartTime: time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC),
		Frequency: model.FrequencyDaily,
		Status:    model.MailingStatusRunning,
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	registry := NewRegistry(newTestDB(t), &fakeTransport{})

	settings := runningSettings(1)
	registry.Register(settings)
	registry.Register(settings)
	registry.Register(settings)

	assert.Equal(t, 1, registry.JobCount(), "re-registration must replace, not add")
	assert.Len(t, registry.cron.Entries(), 1)
}

func TestRegisterSeparateSettings(t *testing.T) {
	registry := NewRegistry(newTestDB(t), &fakeTransport{})

	registry.Register(runningSettings(1))
	registry.Register(runningSettings(2))

	assert.Equal(t, 2, registry.JobCount())
}

func TestRegisterSkipsUnknownFrequency(t *testing.T) {
	registry := NewRegistry(newTestDB(t), &fakeTransport{})

	settings := runningSettings(1)
	settings.Frequency = "fortnightly"
	registry.Register(settings)

	assert.Equal(t, 0, registry.JobCount())
}

func TestSeedFromDatabaseOnlyRunning(t *testing.T) {
	db := newTestDB(t)

	running := model.MailingSettings{
		StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		Frequency: model.FrequencyWeekly,
		Status:    model.MailingStatusRunning,
	}
	created := model.MailingSettings{
		StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		Frequency: model.FrequencyDaily,
		Status:    model.MailingStatusCreated,
	}
	completed := model.MailingSettings{
		StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		Frequency: model.FrequencyMonthly,
		Status:    model.MailingStatusCompleted,
	}
	require.NoError(t, db.Create(&running).Error)
	require.NoError(t, db.Create(&created).Error)
	require.NoError(t, db.Create(&completed).Error)

	registry := NewRegistry(db, &fakeTransport{})
	require.NoError(t, registry.SeedFromDatabase())

	assert.Equal(t, 1, registry.JobCount())
}
