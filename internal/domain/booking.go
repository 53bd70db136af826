package domain

// BookingStatus represents the status of a booking ledger entry
//
// The ledger itself is owned by the booking flow; this core only reads it
// to derive a customer's confirmed booking count for discount resolution
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)
