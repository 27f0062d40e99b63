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

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

type createUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Status      string `json:"status"`
}

type updateUserRequest struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	PhoneNumber *string `json:"phone_number"`
	Status      *string `json:"status"`
}

// CreateUser (POST /api/users)
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload: "+err.Error())
		return
	}

	status := models.UserStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.UserActive
	}

	user, err := models.NewUser(uuid.New(), req.Name, req.Surname, req.Email, req.PhoneNumber, status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := ctrl.UserSvc.Create(user); err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("User with email %s already exists", user.Email))
			return
		}
		log.Printf("failed to create user: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to create user due to an internal error.")
		return
	}

	log.Printf("user created: %s", user.ID)
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// GetUser (GET /api/users/:id)
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := ctrl.UserSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No user found with id %s", id))
			return
		}
		log.Printf("failed to fetch user %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve user due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateUser (PUT /api/users/:id)
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Surname != nil {
		fields["surname"] = *req.Surname
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Status != nil {
		if !models.UserStatus(*req.Status).IsValid() {
			utils.JSONError(c, http.StatusBadRequest, "Unknown user status.")
			return
		}
		fields["status"] = *req.Status
	}

	user, err := ctrl.UserSvc.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			utils.JSONError(c, http.StatusBadRequest, "At least one field must be provided for update.")
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No user found with id %s", id))
		default:
			log.Printf("failed to update user %s: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to update user due to an internal error.")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// DeleteUser (DELETE /api/users/:id)
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	if err := ctrl.UserSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No user found with id %s", id))
			return
		}
		log.Printf("failed to delete user %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to delete user due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": fmt.Sprintf("User %s deleted", id)})
}

// GetUserBookings (GET /api/users/:id/bookings)
func (ctrl *UserController) GetUserBookings(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	bookings, err := ctrl.UserSvc.BookingsFor(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No user found with id %s", id))
			return
		}
		log.Printf("failed to fetch bookings for user %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Unable to retrieve bookings due to an internal error.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
