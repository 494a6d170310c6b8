package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used on the wire and in storage.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar-day string in DateLayout form.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	return time.Parse(DateLayout, value)
}

// FormatDate renders a time as a calendar-day string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseHour extracts the hour component from an "HH:00" style clock label.
func ParseHour(value string) (int, error) {
	value = strings.TrimSpace(value)
	if idx := strings.Index(value, ":"); idx >= 0 {
		value = value[:idx]
	}
	hour, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", value, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	return hour, nil
}

// HourLabel renders an hour as the "HH:00" clock label used by visits.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
