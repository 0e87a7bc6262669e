package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRequesterNameLength = 200
	MaxDescriptionLength   = 500
	MaxResourceNameLength  = 200
	MinEquipmentQuantity   = 0
)

// NoonHour is the boundary hour for morning-only restriction rules
const NoonHour = 12
