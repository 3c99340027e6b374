package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_backend/internal/model"
)

func startAt(hour, minute int) time.Time {
	return time.Date(2024, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func TestCronSpec(t *testing.T) {
	tests := []struct {
		name      string
		frequency model.MailingFrequency
		hour      int
		minute    int
		want      string
	}{
		{"daily morning", model.FrequencyDaily, 9, 15, "15 9 * * *"},
		{"daily midnight", model.FrequencyDaily, 0, 0, "0 0 * * *"},
		{"daily last minute", model.FrequencyDaily, 23, 59, "59 23 * * *"},
		{"weekly fires mondays", model.FrequencyWeekly, 9, 15, "15 9 * * 1"},
		{"weekly evening", model.FrequencyWeekly, 18, 30, "30 18 * * 1"},
		{"monthly first day", model.FrequencyMonthly, 9, 15, "15 9 1 * *"},
		{"monthly noon", model.FrequencyMonthly, 12, 0, "0 12 1 * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := CronSpec(tt.frequency, startAt(tt.hour, tt.minute))
			require.True(t, ok)
			assert.Equal(t, tt.want, spec)
		})
	}
}

// The weekly trigger always anchors to Monday, whatever weekday the start
// time falls on.
func TestCronSpecWeeklyIgnoresStartWeekday(t *testing.T) {
	// 2024-03-14 is a Thursday
	spec, ok := CronSpec(model.FrequencyWeekly, startAt(10, 0))
	require.True(t, ok)
	assert.Equal(t, "0 10 * * 1", spec)
}

func TestCronSpecUnknownFrequency(t *testing.T) {
	for _, frequency := range []model.MailingFrequency{"", "hourly", "yearly", "DAILY"} {
		spec, ok := CronSpec(frequency, startAt(9, 0))
		assert.False(t, ok, "frequency %q must not plan a trigger", frequency)
		assert.Empty(t, spec)
	}
}
