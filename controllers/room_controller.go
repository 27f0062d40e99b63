package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking-backend/models"
	"booking-backend/services"
	"booking-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type createRoomRequest struct {
	HotelID string  `json:"hotel_id" binding:"required"`
	Number  string  `json:"number" binding:"required"`
	Size    string  `json:"size" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
}

type updateRoomRequest struct {
	Number *string  `json:"number"`
	Size   *string  `json:"size"`
	Price  *float64 `json:"price"`
}

// CreateRoom (POST /api/hotels/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload: "+err.Error())
		return
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil || hotelID.Version() != 4 {
		utils.JSONError(c, http.StatusBadRequest, "The supplied hotel id is not a valid UUID4.")
		return
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room number is required.")
		return
	}

	room, err := models.NewRoom(uuid.New(), hotelID, number, models.RoomSize(req.Size), req.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := ctrl.RoomSvc.Create(room); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No hotel found with id %s", hotelID))
		case errors.Is(err, services.ErrConflict):
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Room %s already exists for hotel %s", room.Number, hotelID))
		default:
			log.Printf("failed to create room: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to create room due to an internal error.")
		}
		return
	}

	log.Printf("room created: %s (hotel %s)", room.ID, hotelID)
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GetRoom (GET /api/hotels/rooms/:id)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No room found with id %s", id))
			return
		}
		log.Printf("failed to fetch room %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve room due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// UpdateRoom (PUT /api/hotels/rooms/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Number != nil {
		fields["number"] = strings.TrimSpace(*req.Number)
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}

	room, err := ctrl.RoomSvc.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			utils.JSONError(c, http.StatusBadRequest, "At least one field must be provided for update.")
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No room found with id %s", id))
		case errors.Is(err, models.ErrInvalidPrice), errors.Is(err, models.ErrInvalidSize):
			utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, services.ErrConflict):
			utils.JSONError(c, http.StatusConflict, "Unable to update room due to a unique constraint violation.")
		default:
			log.Printf("failed to update room %s: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to update room due to an internal error.")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom (DELETE /api/hotels/rooms/:id)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No room found with id %s", id))
			return
		}
		log.Printf("failed to delete room %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to delete room due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": fmt.Sprintf("Room %s deleted", id)})
}
