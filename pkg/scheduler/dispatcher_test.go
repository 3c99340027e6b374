package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront_backend/internal/model"
)

func seedCampaign(t *testing.T, db *gorm.DB, emails ...string) model.MailingSettings {
	t.Helper()

	message := model.MailingMessage{Subject: "Hi", MessageContent: "Hello"}
	require.NoError(t, db.Create(&message).Error)

	settings := model.MailingSettings{
		StartTime: time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC),
		Frequency: model.FrequencyDaily,
		Status:    model.MailingStatusRunning,
		MessageID: &message.ID,
	}
	require.NoError(t, db.Create(&settings).Error)

	for _, address := range emails {
		client := model.Client{FullName: "Client " + address, Email: address}
		require.NoError(t, db.Create(&client).Error)
		enrollment := model.MailingClient{ClientID: client.ID, SettingsID: settings.ID}
		require.NoError(t, db.Create(&enrollment).Error)
	}

	return settings
}

func TestDispatchSingleRecipient(t *testing.T) {
	db := newTestDB(t)
	settings := seedCampaign(t, db, "a@example.com")

	transport := &fakeTransport{}
	dispatcher := NewDispatcher(db, transport)

	require.NoError(t, dispatcher.Dispatch(settings.ID))

	require.Len(t, transport.calls, 1, "one firing sends exactly one transport call")
	call := transport.calls[0]
	assert.Equal(t, "Hi", call.Subject)
	assert.Equal(t, "Hello", call.Body)
	assert.Equal(t, []string{"a@example.com"}, call.Recipients)
}

func TestDispatchSendsToAllEnrolledClients(t *testing.T) {
	db := newTestDB(t)
	settings := seedCampaign(t, db, "a@example.com", "b@example.com", "c@example.com")

	transport := &fakeTransport{}
	dispatcher := NewDispatcher(db, transport)

	require.NoError(t, dispatcher.Dispatch(settings.ID))

	require.Len(t, transport.calls, 1)
	assert.ElementsMatch(t,
		[]string{"a@example.com", "b@example.com", "c@example.com"},
		transport.calls[0].Recipients)

	var logs []model.EmailLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 3, "one OK log row per enrolled client")
	for _, attempt := range logs {
		assert.Equal(t, model.EmailLogStatusOK, attempt.Status)
		require.NotNil(t, attempt.SettingsID)
		assert.Equal(t, settings.ID, *attempt.SettingsID)
		assert.NotNil(t, attempt.ClientID)
		assert.False(t, attempt.DatetimeAttempt.IsZero())
	}
}

func TestDispatchSkipsDeletedClients(t *testing.T) {
	db := newTestDB(t)
	settings := seedCampaign(t, db, "a@example.com", "b@example.com")

	var removed model.Client
	require.NoError(t, db.Where("email = ?", "b@example.com").First(&removed).Error)
	require.NoError(t, db.Delete(&removed).Error)

	transport := &fakeTransport{}
	dispatcher := NewDispatcher(db, transport)

	require.NoError(t, dispatcher.Dispatch(settings.ID))

	require.Len(t, transport.calls, 1)
	assert.Equal(t, []string{"a@example.com"}, transport.calls[0].Recipients,
		"deleted client must not appear in the recipient list")

	var logs []model.EmailLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].ClientID)
	assert.NotEqual(t, removed.ID, *logs[0].ClientID)
}

func TestDispatchWithoutRecipientsMakesNoTransportCall(t *testing.T) {
	db := newTestDB(t)
	settings := seedCampaign(t, db)

	transport := &fakeTransport{}
	dispatcher := NewDispatcher(db, transport)

	require.NoError(t, dispatcher.Dispatch(settings.ID))

	assert.Empty(t, transport.calls, "empty recipient list must not reach the transport")

	var count int64
	require.NoError(t, db.Model(&model.EmailLog{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDispatchTransportFailureWritesNoLogs(t *testing.T) {
	db := newTestDB(t)
	settings := seedCampaign(t, db, "a@example.com")

	transport := &fakeTransport{err: errors.New("smtp unreachable")}
	dispatcher := NewDispatcher(db, transport)

	err := dispatcher.Dispatch(settings.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.EmailLog{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "failed firing leaves no attempt records")
}

func TestDispatchWithoutMessage(t *testing.T) {
	db := newTestDB(t)

	settings := model.MailingSettings{
		StartTime: time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC),
		Frequency: model.FrequencyDaily,
		Status:    model.MailingStatusRunning,
	}
	require.NoError(t, db.Create(&settings).Error)

	transport := &fakeTransport{}
	dispatcher := NewDispatcher(db, transport)

	err := dispatcher.Dispatch(settings.ID)
	require.Error(t, err)
	assert.Empty(t, transport.calls)
}

func TestDispatchUnknownSettings(t *testing.T) {
	db := newTestDB(t)
	dispatcher := NewDispatcher(db, &fakeTransport{})

	assert.Error(t, dispatcher.Dispatch(12345))
}
