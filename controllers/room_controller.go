package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id.
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := rc.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PATCH /api/rooms/:id with a partial field map.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := rc.Rooms.Update(id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// SearchAvailable handles GET /api/rooms/available. Query params:
// check_in, check_out (YYYY-MM-DD, required), guests, room_type.
func (rc *RoomController) SearchAvailable(c *gin.Context) {
	checkIn, err := parseDate(c.Query("check_in"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	checkOut, err := parseDate(c.Query("check_out"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	guests := 1
	if raw := c.Query("guests"); raw != "" {
		parsed, convErr := parsePositiveInt(raw)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "guests must be a positive integer")
			return
		}
		guests = parsed
	}

	rooms, err := rc.Rooms.SearchAvailable(checkIn, checkOut, guests, c.Query("room_type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CheckAvailability handles GET /api/rooms/:id/availability, the per-room
// availability probe used by the booking form.
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	checkIn, err := parseDate(c.Query("check_in"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	checkOut, err := parseDate(c.Query("check_out"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	available, err := rc.Bookings.IsAvailable(room, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":   room.ID,
		"check_in":  checkIn.Format(dateLayout),
		"check_out": checkOut.Format(dateLayout),
		"available": available,
	})
}
