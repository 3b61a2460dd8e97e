package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/models"

	"gorm.io/gorm"
)

// RoomService covers room CRUD and the available-room search used by the
// booking flow.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.RoomType == "" {
		room.RoomType = models.RoomTypeSingle
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if room.Capacity == 0 {
		room.Capacity = 1
	}
	if err := room.Validate(); err != nil {
		return err
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return room, nil
}

// Update applies a partial update. Identity and bookkeeping fields are
// stripped so clients cannot rewrite them, and the patched row is
// re-validated before the transaction commits so a bad field map never
// persists.
func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if number, ok := fields["number"].(string); ok {
		fields["number"] = strings.TrimSpace(number)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			if isDuplicateKeyError(result.Error) {
				return ErrDuplicateRoomNumber
			}
			return fmt.Errorf("failed to update room %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRoomNotFound
		}

		var updated models.Room
		if err := tx.First(&updated, id).Error; err != nil {
			return fmt.Errorf("failed to reload room %d: %w", id, err)
		}
		return updated.Validate()
	})
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SearchAvailable returns rooms free over [checkIn, checkOut) that hold at
// least guests people, optionally restricted to one room type. Rooms in
// maintenance are excluded up front; rooms with an overlapping active
// booking are excluded through the same overlap predicate the
// BookingService uses.
func (s *RoomService) SearchAvailable(checkIn, checkOut time.Time, guests int, roomType string) ([]models.Room, error) {
	checkIn, checkOut = truncateToDate(checkIn), truncateToDate(checkOut)
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	if guests <= 0 {
		guests = 1
	}

	busy := s.DB.Model(&models.Booking{}).
		Select("room_id").
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	query := s.DB.
		Where("status <> ?", models.RoomStatusMaintenance).
		Where("capacity >= ?", guests).
		Where("id NOT IN (?)", busy)
	if roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	if err := query.Order("number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}
	return rooms, nil
}

// isDuplicateKeyError matches unique-index violations across MySQL and the
// SQLite driver used in tests.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
