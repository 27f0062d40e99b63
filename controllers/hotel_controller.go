package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"booking-backend/models"
	"booking-backend/services"
	"booking-backend/utils"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

type createHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	PhoneNumber string   `json:"phone_number"`
	Email       string   `json:"email"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Amenities   []string `json:"amenities"`
}

type updateHotelRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
}

// CreateHotel (POST /api/hotels)
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel payload: "+err.Error())
		return
	}

	now := time.Now().UTC()
	hotel, err := models.NewHotel(
		uuid.New(),
		req.Name,
		strings.TrimSpace(req.PhoneNumber),
		strings.TrimSpace(req.Email),
		req.Address,
		req.City,
		req.Country,
		now,
		now,
	)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Amenities) > 0 {
		raw, err := json.Marshal(req.Amenities)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid amenities payload.")
			return
		}
		hotel.Amenities = datatypes.JSON(raw)
	}

	if err := ctrl.HotelSvc.Create(hotel); err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Hotel with email %s already exists", hotel.Email))
			return
		}
		log.Printf("failed to create hotel: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to create hotel due to an internal error.")
		return
	}

	log.Printf("hotel created: %s", hotel.ID)
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// GetHotel (GET /api/hotels/:id)
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := parseID(c, "id", "hotel")
	if !ok {
		return
	}

	hotel, err := ctrl.HotelSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No hotel found with id %s", id))
			return
		}
		log.Printf("failed to fetch hotel %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve hotel due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// UpdateHotel (PUT /api/hotels/:id)
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "id", "hotel")
	if !ok {
		return
	}

	var req updateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel payload: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}

	hotel, err := ctrl.HotelSvc.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			utils.JSONError(c, http.StatusBadRequest, "At least one field must be provided for update.")
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No hotel found with id %s", id))
		default:
			log.Printf("failed to update hotel %s: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to update hotel due to an internal error.")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// DeleteHotel (DELETE /api/hotels/:id)
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c, "id", "hotel")
	if !ok {
		return
	}

	if err := ctrl.HotelSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No hotel found with id %s", id))
			return
		}
		log.Printf("failed to delete hotel %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to delete hotel due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": fmt.Sprintf("Hotel %s deleted", id)})
}

// GetHotelRooms (GET /api/hotels/:id/rooms)
func (ctrl *HotelController) GetHotelRooms(c *gin.Context) {
	id, ok := parseID(c, "id", "hotel")
	if !ok {
		return
	}

	rooms, err := ctrl.HotelSvc.ListRooms(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No rooms found for hotel with id %s", id))
			return
		}
		log.Printf("failed to fetch rooms for hotel %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve rooms due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
