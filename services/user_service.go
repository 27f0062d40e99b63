package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"booking-backend/models"
)

// UserService wraps *gorm.DB with the user CRUD operations.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create persists a new user. A duplicate email is reported as ErrConflict,
// whether caught by the pre-check or by the unique index after losing a race.
func (s *UserService) Create(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("query existing users by email: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrConflict)
	}

	if err := s.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

// Update applies a partial field update and returns the refreshed record.
func (s *UserService) Update(id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// BookingsFor returns the persisted bookings referencing a user as guest.
func (s *UserService) BookingsFor(id uuid.UUID) ([]models.Booking, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Find(&bookings, "guest_id = ?", user.ID).Error; err != nil {
		return nil, fmt.Errorf("fetch bookings for user: %w", err)
	}
	for _, b := range bookings {
		user.AddBooking(b)
	}
	return user.GetBookings(), nil
}
