package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
)

// Room statuses. A room in maintenance is never available, regardless of
// its bookings.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	// Visible room number (e.g. "101"), unique across the hotel.
	Number string `json:"number" gorm:"column:number;uniqueIndex;type:varchar(10)" validate:"required,max=10"`
	Floor  *int   `json:"floor,omitempty" gorm:"column:floor"`

	RoomType  string  `json:"room_type" gorm:"column:room_type;size:10;default:single;index" validate:"oneof=single double suite"`
	Capacity  int     `json:"capacity" gorm:"column:capacity;default:1" validate:"gt=0"`
	BasePrice float64 `json:"base_price" gorm:"column:base_price" validate:"gte=0"`
	Status    string  `json:"status" gorm:"column:status;size:12;default:available;index" validate:"oneof=available occupied maintenance"`

	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
}

// Validate checks field-level constraints before the room is persisted.
func (r *Room) Validate() error {
	if err := validate.Struct(r); err != nil {
		return newValidationError("room", err)
	}
	return nil
}
