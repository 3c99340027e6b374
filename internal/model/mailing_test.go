package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailingSettingsLifecycle(t *testing.T) {
	settings := MailingSettings{Status: MailingStatusCreated}

	require.NoError(t, settings.TransitionTo(MailingStatusRunning))
	assert.Equal(t, MailingStatusRunning, settings.Status)

	require.NoError(t, settings.TransitionTo(MailingStatusCompleted))
	assert.Equal(t, MailingStatusCompleted, settings.Status)
}

func TestMailingSettingsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from MailingStatus
		to   MailingStatus
	}{
		{"created cannot complete directly", MailingStatusCreated, MailingStatusCompleted},
		{"running cannot go back", MailingStatusRunning, MailingStatusCreated},
		{"completed is terminal", MailingStatusCompleted, MailingStatusRunning},
		{"completed cannot reset", MailingStatusCompleted, MailingStatusCreated},
		{"no self transition", MailingStatusRunning, MailingStatusRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := MailingSettings{Status: tt.from}
			err := settings.TransitionTo(tt.to)
			assert.Error(t, err)
			assert.Equal(t, tt.from, settings.Status, "status must not change on invalid transition")
		})
	}
}

func TestValidFrequency(t *testing.T) {
	assert.True(t, ValidFrequency(FrequencyDaily))
	assert.True(t, ValidFrequency(FrequencyWeekly))
	assert.True(t, ValidFrequency(FrequencyMonthly))
	assert.False(t, ValidFrequency("hourly"))
	assert.False(t, ValidFrequency(""))
}
