package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:00")
		require.NoError(t, err)
		assert.Equal(t, "10:00", ts.String())
	})

	t.Run("normalizes short form", func(t *testing.T) {
		ts, err := NewTimeStringFromString("9:05")
		require.NoError(t, err)
		assert.Equal(t, "09:05", ts.String())
	})

	t.Run("rejects out of range hours", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewTimeStringFromString("not-a-time")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("adds within day", func(t *testing.T) {
		ts := TimeString("10:00")
		result, err := ts.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), result)
	})

	t.Run("overflow past midnight", func(t *testing.T) {
		ts := TimeString("23:50")
		_, err := ts.AddMinutes(20)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("underflow before midnight", func(t *testing.T) {
		ts := TimeString("00:10")
		_, err := ts.AddMinutes(-20)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_At(t *testing.T) {
	loc := time.FixedZone("-04", -4*3600)
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	instant, err := TimeString("14:30").At(day)
	require.NoError(t, err)

	assert.Equal(t, 14, instant.Hour())
	assert.Equal(t, 30, instant.Minute())
	assert.Equal(t, day.Location(), instant.Location())
	assert.Equal(t, day.Day(), instant.Day())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:30")))
	assert.Equal(t, TimeString("11:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)
}
