package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDate("2023-05-15")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Rejects Other Layouts", func(t *testing.T) {
		_, err := ParseDate("15/05/2023")

		assert.Error(t, err)
	})

	t.Run("Round Trip", func(t *testing.T) {
		parsed, err := ParseDate("2024-02-29")

		assert.NoError(t, err)
		assert.Equal(t, "2024-02-29", FormatDate(parsed))
	})
}

func TestToday(t *testing.T) {
	today := Today()

	t.Run("Truncated To Midnight", func(t *testing.T) {
		assert.Zero(t, today.Hour())
		assert.Zero(t, today.Minute())
		assert.Zero(t, today.Second())
		assert.Zero(t, today.Nanosecond())
	})

	t.Run("UTC Location", func(t *testing.T) {
		assert.Equal(t, time.UTC, today.Location())
	})

	t.Run("Formats As A Bare Date", func(t *testing.T) {
		assert.Len(t, FormatDate(today), 10)
	})
}
