package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking statuses.
const (
	BookingStatusReserved   = "reserved"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// ActiveBookingStatuses are the statuses that count against availability.
var ActiveBookingStatuses = []string{BookingStatusReserved, BookingStatusCheckedIn}

// bookingTransitions is the allowed status state machine. checked_out and
// cancelled are terminal. Bookings are never deleted; cancellation is a
// status change.
var bookingTransitions = map[string][]string{
	BookingStatusReserved:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn: {BookingStatusCheckedOut, BookingStatusCancelled},
}

// Booking occupies a room over the half-open interval [CheckIn, CheckOut):
// the check-out day itself is free, so back-to-back bookings do not overlap.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	RoomID        uint   `gorm:"column:room_id;not null;index:idx_bookings_room_range,priority:1" json:"room_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	GuestName   string `gorm:"column:guest_name;size:120" json:"guest_name" validate:"required,max=120"`
	GuestsCount int    `gorm:"column:guests_count;default:1" json:"guests_count" validate:"gt=0"`

	CheckIn  time.Time `gorm:"column:check_in;index:idx_bookings_room_range,priority:2" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;index:idx_bookings_room_range,priority:3" json:"check_out"`

	Status string `gorm:"column:status;size:12;default:reserved;index" json:"status" validate:"oneof=reserved checked_in checked_out cancelled"`

	// The association is excluded from struct validation: it is loaded on
	// reads and zero-valued on create, where RoomID is what matters.
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty" validate:"-"`
}

// Validate checks field-level constraints before the booking is persisted.
func (b *Booking) Validate() error {
	if err := validate.Struct(b); err != nil {
		return newValidationError("booking", err)
	}
	return nil
}

// IsActive reports whether the booking counts against room availability.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusReserved || b.Status == BookingStatusCheckedIn
}

// CanTransitionTo reports whether the status state machine allows moving
// from the booking's current status to next.
func (b *Booking) CanTransitionTo(next string) bool {
	for _, allowed := range bookingTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NewReferenceCode returns a short guest-facing booking code, e.g.
// "BK-3F2A81C0D4".
func NewReferenceCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK-" + raw[:10]
}
