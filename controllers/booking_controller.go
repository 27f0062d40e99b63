package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking-backend/models"
	"booking-backend/services"
	"booking-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
	HotelSvc   *services.HotelService
}

func NewBookingController(bookingSvc *services.BookingService, hotelSvc *services.HotelService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, HotelSvc: hotelSvc}
}

type createBookingRequest struct {
	GuestID   string    `json:"guest_id" binding:"required"`
	RoomID    string    `json:"room_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Status    string    `json:"status"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking (POST /api/hotels/:id/bookings) runs a candidate through
// hotel admission rather than inserting it raw. Denials come back as 409 with
// the typed result so clients can branch on the reason.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	hotelID, ok := parseID(c, "id", "hotel")
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil || guestID.Version() != 4 {
		utils.JSONError(c, http.StatusBadRequest, "The supplied guest id is not a valid UUID4.")
		return
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil || roomID.Version() != 4 {
		utils.JSONError(c, http.StatusBadRequest, "The supplied room id is not a valid UUID4.")
		return
	}

	status := models.BookingStatus(req.Status)
	if req.Status == "" {
		status = models.StatusPending
	}

	now := time.Now().UTC()
	candidate, err := models.NewBooking(uuid.New(), guestID, roomID, req.StartDate, req.EndDate, status, now, now)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctrl.HotelSvc.Book(hotelID, candidate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No hotel found with id %s", hotelID))
		case errors.Is(err, models.ErrInvalidState):
			utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("failed to book for hotel %s: %v", hotelID, err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to create booking due to an internal error.")
		}
		return
	}

	if result.Status == models.ResultDenied {
		// A denial is a normal business outcome; the typed result rides along
		// so the caller can branch on the reason.
		c.JSON(http.StatusConflict, gin.H{"success": false, "data": result})
		return
	}
	log.Printf("booking confirmed: %s (hotel %s)", result.BookingID, hotelID)
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// GetBooking (GET /api/bookings/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No booking found with id %s", id))
			return
		}
		log.Printf("failed to fetch booking %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve booking due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBookingStatus (PATCH /api/bookings/:id/status)
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "booking")
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, models.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No booking found with id %s", id))
		case errors.Is(err, models.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Status must be 'confirmed' or 'cancelled'.")
		default:
			log.Printf("failed to update booking %s: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to update booking due to an internal error.")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking (DELETE /api/bookings/:id)
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id", "booking")
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No booking found with id %s", id))
			return
		}
		log.Printf("failed to delete booking %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to delete booking due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": fmt.Sprintf("Booking %s deleted", id)})
}
