package utils

import (
	"errors"
	"practice-service/internal/pkg/constvars"
	"strings"
	"time"
)

var acceptedDateLayouts = []string{
	constvars.DateLayoutDayMonthYear,
	constvars.DateLayoutISODate,
	time.RFC3339,
}

// ParseFlexibleDate parses dd/mm/yyyy, yyyy-mm-dd or RFC3339 values in the local timezone.
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New(constvars.ErrDevCannotParseDate)
	}
	for _, layout := range acceptedDateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New(constvars.ErrDevCannotParseDate)
}

// ParseOptionalDate is ParseFlexibleDate for query values where an empty
// string means the bound is open.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := ParseFlexibleDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfDay moves t to the last nanosecond of its calendar day so that an end
// date given without a time includes the whole day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
