package domain

import "github.com/reservasalas/BookingService/pkg/types"

// AvailableEquipment is one equipment item with its remaining units for a slot
type AvailableEquipment struct {
	Equipment      Equipment
	AvailableUnits int
	UsedUnits      int
}

// IsExhausted returns true if no units remain for the slot
func (a *AvailableEquipment) IsExhausted() bool {
	return a.AvailableUnits <= 0
}

// Availability is the set of resources still free for a given (date, slot) pair
type Availability struct {
	StartTime          types.TimeString
	FreeInfrastructure []Infrastructure
	FreeEquipment      []AvailableEquipment
}
