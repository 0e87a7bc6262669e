package domain

// Infrastructure is a single-occupancy physical resource, e.g. a meeting room.
// Name is unique within the catalog.
type Infrastructure struct {
	ID          int64
	Name        string
	Description string

	// HasBookings is set on catalog listings: true while any booking references
	// this item, which also blocks deletion.
	HasBookings bool
}

// Equipment is a multi-unit resource with a fixed total quantity.
// Quantity bounds concurrent use within a single time slot, not across slots.
type Equipment struct {
	ID          int64
	Name        string
	Description string
	Quantity    int

	HasBookings bool
}
