package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("-04", -4*3600)

	t.Run("plain date", func(t *testing.T) {
		day, err := ParseDate("2025-10-15", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, loc), day)
	})

	t.Run("timestamp keeps calendar day", func(t *testing.T) {
		day, err := ParseDate("2025-10-15T14:30:00Z", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, loc), day)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := ParseDate("15/10/2025", loc)
		assert.Error(t, err)
	})
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("-04", -4*3600)

	t.Run("truncates time of day", func(t *testing.T) {
		instant := time.Date(2025, 10, 15, 18, 45, 12, 0, loc)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, loc), NormalizeDate(instant, loc))
	})

	t.Run("converts foreign zone before truncating", func(t *testing.T) {
		// 01:30 UTC 16-го октября это еще 15-е октября в зоне -04
		instant := time.Date(2025, 10, 16, 1, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, loc), NormalizeDate(instant, loc))
	})
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("-04", -4*3600)

	a := time.Date(2025, 10, 15, 23, 0, 0, 0, loc)
	b := time.Date(2025, 10, 15, 1, 0, 0, 0, loc)
	c := time.Date(2025, 10, 16, 1, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, c, loc))
}
