package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	t.Run("Day Month Year", func(t *testing.T) {
		parsed, err := ParseFlexibleDate("05/03/2024")
		require.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 5, parsed.Day())
	})

	t.Run("ISO Date", func(t *testing.T) {
		parsed, err := ParseFlexibleDate("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 5, parsed.Day())
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseFlexibleDate("31-31-2024")
		assert.Error(t, err)
	})

	t.Run("Empty Optional", func(t *testing.T) {
		parsed, err := ParseOptionalDate("")
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})
}

func TestFirstDayOfMonth(t *testing.T) {
	now := time.Date(2024, time.July, 17, 15, 4, 5, 0, time.UTC)

	first := FirstDayOfMonth(now)

	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), first)
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC)

	end := EndOfDay(day)

	assert.Equal(t, 17, end.Day())
	assert.True(t, end.After(day.Add(23*time.Hour)))
	assert.True(t, end.Before(day.Add(24*time.Hour)))
}
