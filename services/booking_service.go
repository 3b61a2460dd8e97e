package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService holds the availability and reservation logic. Operations
// take the room and a date range explicitly; the service itself is
// stateless apart from the database handle.
//
// Interval convention: [check_in, check_out). The check_out night is not
// occupied, so a booking ending on a given day and another starting on the
// same day do not overlap.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ValidateRange rejects zero dates and any range where checkIn is not
// strictly before checkOut. Both availability and reservation call this
// before touching the database.
func ValidateRange(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrInvalidRange
	}
	if !checkIn.Before(checkOut) {
		return ErrInvalidRange
	}
	return nil
}

// IsAvailable reports whether room is free over [checkIn, checkOut).
// A room in maintenance is never available. No side effects.
func (s *BookingService) IsAvailable(room models.Room, checkIn, checkOut time.Time) (bool, error) {
	// Intervals are calendar dates: drop the time of day before the range
	// check so same-day timestamps cannot pass as a non-empty interval.
	checkIn, checkOut = truncateToDate(checkIn), truncateToDate(checkOut)
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return false, err
	}
	return s.isAvailable(s.DB, room, checkIn, checkOut)
}

// isAvailable runs the canonical overlap check on the given handle, so the
// same query can run inside the reserve transaction. Two half-open
// intervals [a,b) and [c,d) overlap iff a < d and c < b.
func (s *BookingService) isAvailable(tx *gorm.DB, room models.Room, checkIn, checkOut time.Time) (bool, error) {
	if room.Status == models.RoomStatusMaintenance {
		return false, nil
	}

	var overlapping int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", room.ID, models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&overlapping).Error
	if err != nil {
		return false, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return overlapping == 0, nil
}

// Reserve creates a booking for room over [checkIn, checkOut) if the room
// is available. guestsCount defaults to 1 and status to reserved when zero.
//
// The availability re-check and the insert run inside one transaction
// holding a FOR UPDATE lock on the rooms row, which is the per-room
// serialization point: of two concurrent reserves for overlapping ranges,
// the loser observes the winner's booking and fails with ErrNotAvailable.
// A failed reserve writes nothing.
func (s *BookingService) Reserve(room models.Room, checkIn, checkOut time.Time, guestName string, guestsCount int, status string) (*models.Booking, error) {
	checkIn, checkOut = truncateToDate(checkIn), truncateToDate(checkOut)
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	if guestsCount == 0 {
		guestsCount = 1
	}
	if status == "" {
		status = models.BookingStatusReserved
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, room.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to lock room %d: %w", room.ID, err)
		}

		available, err := s.isAvailable(tx, locked, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !available {
			return ErrNotAvailable
		}

		booking = models.Booking{
			RoomID:        locked.ID,
			ReferenceCode: models.NewReferenceCode(),
			GuestName:     guestName,
			GuestsCount:   guestsCount,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Status:        status,
		}
		if err := booking.Validate(); err != nil {
			return err
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetAll returns every booking with its room, newest first.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Room").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// GetByID returns one booking with its room.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}
	return &booking, nil
}

// TransitionStatus moves a booking through its status state machine
// (reserved → checked_in → checked_out, with cancellation from either
// non-terminal state). Bookings are never deleted.
func (s *BookingService) TransitionStatus(id uint, next string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if !booking.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update booking %d status: %w", id, err)
		}
		booking.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// truncateToDate drops the time-of-day part so stored intervals compare as
// plain calendar dates.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
