package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"booking-backend/models"
)

// BookingService wraps *gorm.DB with the booking lifecycle operations that do
// not go through hotel admission.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch booking: %w", err)
	}
	return &booking, nil
}

// UpdateStatus moves a booking to confirmed or cancelled through the entity's
// own (deliberately permissive) transition and persists the result.
func (s *BookingService) UpdateStatus(id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := booking.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":           booking.Status,
		"last_modified_at": booking.LastModifiedAt,
	}).Error; err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Booking{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
