package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used as the booking slot key.
const DateLayout = "2006-01-02"

// ParseDate validates a yyyy-mm-dd date string.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}
	return d, nil
}

// ValidateBookingDate rejects malformed dates and dates strictly before
// the current day. Today itself is bookable.
func ValidateBookingDate(dateStr string, now time.Time) error {
	d, err := ParseDate(dateStr)
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return fmt.Errorf("date %s is in the past", dateStr)
	}
	return nil
}

// Today returns the current day formatted as a slot key.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
