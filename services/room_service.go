package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"booking-backend/models"
)

// RoomService wraps *gorm.DB with the room CRUD operations.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Create persists a new room. The owning hotel must exist, and the room number
// must be unused within it; a taken number is reported as ErrConflict whether
// caught by the pre-check or by the composite unique index.
func (s *RoomService) Create(room *models.Room) error {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", room.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("fetch hotel: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND number = ?", room.HotelID, room.Number).
		Count(&count).Error; err != nil {
		return fmt.Errorf("query existing rooms for hotel: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("room %s already exists for hotel %s: %w", room.Number, room.HotelID, ErrConflict)
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room %s already exists for hotel %s: %w", room.Number, room.HotelID, ErrConflict)
		}
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetByID(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch room: %w", err)
	}
	return &room, nil
}

// Update applies a partial field update. Price and size changes are
// re-validated against the construction invariants, and a number change is
// re-checked for uniqueness within the hotel.
func (s *RoomService) Update(id uuid.UUID, fields map[string]interface{}) (*models.Room, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if v, ok := fields["price"]; ok {
		price, ok := v.(float64)
		if !ok || price <= 0 {
			return nil, models.ErrInvalidPrice
		}
	}
	if v, ok := fields["size"]; ok {
		size, ok := v.(string)
		if !ok || !models.RoomSize(size).IsValid() {
			return nil, models.ErrInvalidSize
		}
	}
	if v, ok := fields["number"]; ok {
		number, _ := v.(string)
		if number != room.Number {
			var count int64
			if err := s.DB.Model(&models.Room{}).
				Where("hotel_id = ? AND number = ? AND id <> ?", room.HotelID, number, room.ID).
				Count(&count).Error; err != nil {
				return nil, fmt.Errorf("query existing rooms for hotel: %w", err)
			}
			if count > 0 {
				return nil, fmt.Errorf("room %s already exists for hotel %s: %w", number, room.HotelID, ErrConflict)
			}
		}
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("room number already exists for hotel %s: %w", room.HotelID, ErrConflict)
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
