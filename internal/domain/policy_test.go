package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var mondayRule = RestrictionRule{
	Weekday:      time.Monday,
	BeforeHour:   NoonHour,
	ResourceName: "sala de reunião",
	AdminBypass:  true,
}

func TestRestrictionRule_AppliesTo(t *testing.T) {
	loc := time.FixedZone("-04", -4*3600)
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, loc)
	tuesday := monday.AddDate(0, 0, 1)

	t.Run("monday morning applies", func(t *testing.T) {
		assert.True(t, mondayRule.AppliesTo(monday, "09:00", false))
	})

	t.Run("admin bypasses", func(t *testing.T) {
		assert.False(t, mondayRule.AppliesTo(monday, "09:00", true))
	})

	t.Run("monday afternoon does not apply", func(t *testing.T) {
		assert.False(t, mondayRule.AppliesTo(monday, "13:00", false))
	})

	t.Run("noon boundary does not apply", func(t *testing.T) {
		assert.False(t, mondayRule.AppliesTo(monday, "12:00", false))
	})

	t.Run("other weekday does not apply", func(t *testing.T) {
		assert.False(t, mondayRule.AppliesTo(tuesday, "09:00", false))
	})
}

func TestRestrictionRule_Restricts(t *testing.T) {
	assert.True(t, mondayRule.Restricts("sala de reunião"))
	assert.True(t, mondayRule.Restricts("Sala de Reunião"))
	assert.True(t, mondayRule.Restricts("SALA DE REUNIÃO"))
	assert.False(t, mondayRule.Restricts("sala de treinamento"))
}
