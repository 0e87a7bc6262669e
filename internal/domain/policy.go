package domain

import (
	"strings"
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// RestrictionRule blocks a named infrastructure item during a weekly recurring
// window. Rules are declarative so new windows can be added without touching
// the availability engine.
type RestrictionRule struct {
	// Weekday the rule applies to
	Weekday time.Weekday
	// BeforeHour restricts slots starting strictly before this hour (24h clock)
	BeforeHour int
	// ResourceName names the restricted infrastructure, compared case-insensitively
	ResourceName string
	// AdminBypass lets privileged callers ignore the rule
	AdminBypass bool
}

// AppliesTo returns true if the rule is in effect for the given date, slot and caller
func (r RestrictionRule) AppliesTo(date time.Time, slot types.TimeString, isAdmin bool) bool {
	if isAdmin && r.AdminBypass {
		return false
	}
	if date.Weekday() != r.Weekday {
		return false
	}

	hour, _, err := slot.Clock()
	if err != nil {
		return false
	}
	return hour < r.BeforeHour
}

// Restricts returns true if the rule targets the given infrastructure name
func (r RestrictionRule) Restricts(name string) bool {
	return strings.EqualFold(name, r.ResourceName)
}

// DefaultRestrictionRules is the shipped policy table: the shared meeting room
// is reserved for internal use on Monday mornings.
var DefaultRestrictionRules = []RestrictionRule{
	{
		Weekday:      time.Monday,
		BeforeHour:   NoonHour,
		ResourceName: "sala de reunião",
		AdminBypass:  true,
	},
}
