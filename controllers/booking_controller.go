package controllers

import (
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
}

func NewBookingController(bookings *services.BookingService, rooms *services.RoomService) *BookingController {
	return &BookingController{Bookings: bookings, Rooms: rooms}
}

type createBookingRequest struct {
	RoomID      uint   `json:"room_id" binding:"required"`
	GuestName   string `json:"guest_name" binding:"required"`
	GuestsCount int    `json:"guests_count"`
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	Status      string `json:"status"`
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking handles POST /api/bookings. The reservation itself runs
// through BookingService.Reserve, which owns the availability re-check and
// the atomic insert.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	room, err := bc.Rooms.GetByID(req.RoomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	booking, err := bc.Bookings.Reserve(room, checkIn, checkOut, req.GuestName, req.GuestsCount, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status, the
// check-in / check-out / cancel transitions. Illegal transitions get 422.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := bc.Bookings.TransitionStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
