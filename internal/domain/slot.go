package domain

import "time"

// SlotMode represents the delivery mode of a session slot
type SlotMode string

const (
	ModeOnline  SlotMode = "online"
	ModeOffline SlotMode = "offline"
)

// IsValid returns true if the mode is a known delivery mode
func (m SlotMode) IsValid() bool {
	return m == ModeOnline || m == ModeOffline
}

// Slot represents a bounded time window published for booking
// Slots never overlap: the calendar is shared between online and offline
// sessions, so the overlap check deliberately ignores Mode
type Slot struct {
	ID        int64
	Date      time.Time // Календарная дата слота (для группировки в выдаче)
	StartTime time.Time
	EndTime   time.Time
	Mode      SlotMode
	IsBooked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the length of the slot
func (s *Slot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Overlaps reports whether the [start, end) interval intersects the slot.
// Touching endpoints are not an overlap: adjacent slots are allowed
func (s *Slot) Overlaps(start, end time.Time) bool {
	return start.Before(s.EndTime) && end.After(s.StartTime)
}

// CanBeDeleted returns true if the slot may be removed from the calendar
// Booked slots are immutable here; cancellation is handled by the booking flow
func (s *Slot) CanBeDeleted() bool {
	return !s.IsBooked
}
