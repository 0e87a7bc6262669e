package domain

import (
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// Booking represents a reservation of shared resources for a single time slot.
// A booking may hold at most one infrastructure item (a room is single-occupancy)
// and any number of equipment units; repeated equipment IDs mean repeated units.
type Booking struct {
	ID               int64
	InfrastructureID *int64
	EquipmentIDs     []int64
	RequesterName    string
	BookingDate      time.Time
	StartTime        types.TimeString
	Description      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UsesInfrastructure returns true if the booking references the given infrastructure
func (b *Booking) UsesInfrastructure(id int64) bool {
	return b.InfrastructureID != nil && *b.InfrastructureID == id
}

// EquipmentUnits returns how many units of the given equipment the booking holds
func (b *Booking) EquipmentUnits(id int64) int {
	count := 0
	for _, equipID := range b.EquipmentIDs {
		if equipID == id {
			count++
		}
	}
	return count
}

// BookingUpdate carries the fields of a partial booking update.
// Nil fields keep their stored values; EquipmentIDs replaces the whole list when set.
type BookingUpdate struct {
	InfrastructureID *int64
	EquipmentIDs     []int64
	RequesterName    *string
	BookingDate      *time.Time
	StartTime        *types.TimeString
	Description      *string
}
