package attendance

import "time"

// LockConfig bounds the editable window around today. GracePeriodDays
// reaches into the past, MaxFutureDays into the future; both are
// inclusive.
type LockConfig struct {
	GracePeriodDays int
	MaxFutureDays   int
}

// IsDateEditable reports whether a date may still be marked or changed.
// Only the calendar date matters; both inputs are truncated to midnight
// before comparing.
func IsDateEditable(today, target time.Time, cfg LockConfig) bool {
	t := truncateToDate(today)
	d := truncateToDate(target)

	diffDays := int(t.Sub(d).Hours() / 24)
	if diffDays > cfg.GracePeriodDays {
		return false
	}
	if -diffDays > cfg.MaxFutureDays {
		return false
	}
	return true
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
