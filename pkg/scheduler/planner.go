package scheduler

import (
	"fmt"
	"time"

	"storefront_backend/internal/model"
)

// CronSpec converts a mailing frequency and the hour:minute of its start
// time into a cron spec for the job engine.
//
//	daily   -> every day at that time
//	weekly  -> every Monday at that time (the start time's own weekday is
//	           ignored; behavior kept from the original scheduling rules)
//	monthly -> the 1st of every month at that time
//
// Any other frequency yields ok=false and no job gets planned.
func CronSpec(frequency model.MailingFrequency, startTime time.Time) (spec string, ok bool) {
	hour, minute := startTime.Hour(), startTime.Minute()

	switch frequency {
	case model.FrequencyDaily:
		return fmt.Sprintf("%d %d * * *", minute, hour), true
	case model.FrequencyWeekly:
		return fmt.Sprintf("%d %d * * 1", minute, hour), true
	case model.FrequencyMonthly:
		return fmt.Sprintf("%d %d 1 * *", minute, hour), true
	default:
		return "", false
	}
}
