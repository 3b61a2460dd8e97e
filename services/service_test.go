package services

import (
	"testing"
	"time"

	"hotel-booking/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Single connection: transactions serialize the same way row-locked
	// MySQL transactions do, which keeps the concurrency tests deterministic.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Booking{}))
	return db
}

func createRoom(t *testing.T, db *gorm.DB, number, status string, capacity int) models.Room {
	t.Helper()
	room := models.Room{
		Number:    number,
		RoomType:  models.RoomTypeDouble,
		Capacity:  capacity,
		BasePrice: 100,
		Status:    status,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createBooking(t *testing.T, db *gorm.DB, room models.Room, checkIn, checkOut, status string) models.Booking {
	t.Helper()
	booking := models.Booking{
		RoomID:        room.ID,
		ReferenceCode: models.NewReferenceCode(),
		GuestName:     "Existing Guest",
		GuestsCount:   1,
		CheckIn:       date(checkIn),
		CheckOut:      date(checkOut),
		Status:        status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func countBookings(t *testing.T, db *gorm.DB, roomID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&count).Error)
	return count
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
