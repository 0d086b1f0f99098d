package services

import (
	"time"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/models"
)

// Wire format for exercise dates. Existing clients match on the calendar
// string exactly, so responses must never fall back to ISO/timestamp form.
const (
	DateLayout      = "Mon Jan 02 2006"
	DateInputLayout = "2006-01-02"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// parseDate reads a yyyy-mm-dd string as UTC midnight.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateInputLayout, s, time.UTC)
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

func toLogEntry(e models.Exercise) LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}
}
