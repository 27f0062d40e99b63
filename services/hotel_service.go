package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-backend/models"
)

// HotelService wraps *gorm.DB with hotel CRUD plus the transactional booking
// admission flow.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Create persists a new hotel. A duplicate email (when one is set) is reported
// as ErrConflict.
func (s *HotelService) Create(hotel *models.Hotel) error {
	if hotel.Email != "" {
		var count int64
		if err := s.DB.Model(&models.Hotel{}).Where("email = ?", hotel.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("query existing hotels by email: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("hotel with email %s already exists: %w", hotel.Email, ErrConflict)
		}
	}

	if err := s.DB.Create(hotel).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("hotel with email %s already exists: %w", hotel.Email, ErrConflict)
		}
		return fmt.Errorf("create hotel: %w", err)
	}
	return nil
}

func (s *HotelService) GetByID(id uuid.UUID) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch hotel: %w", err)
	}
	return &hotel, nil
}

// Update applies a partial field update, refreshing last_modified_at, and
// returns the refreshed record.
func (s *HotelService) Update(id uuid.UUID, fields map[string]interface{}) (*models.Hotel, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	fields["last_modified_at"] = now()
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}
	return s.GetByID(id)
}

func (s *HotelService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Hotel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	return nil
}

// ListRooms returns a hotel's rooms. A hotel without rooms is reported as
// ErrNotFound, matching the listing contract of the HTTP surface.
func (s *HotelService) ListRooms(id uuid.UUID) ([]models.Room, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := s.DB.Find(&rooms, "hotel_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("fetch rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, ErrNotFound
	}
	return rooms, nil
}

// Book runs booking admission inside one transaction: the hotel row is locked,
// the aggregate is loaded, the in-memory admission algorithm decides, and only
// a confirmation writes anything. Locking the hotel row keeps two concurrent
// admissions for the same hotel from both passing the availability guard.
func (s *HotelService) Book(hotelID uuid.UUID, candidate *models.Booking) (models.BookingResult, error) {
	var result models.BookingResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		hotelQuery := tx
		if tx.Dialector.Name() == "mysql" {
			// sqlite (tests) has no row locks; its writes serialize anyway
			hotelQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var hotel models.Hotel
		if err := hotelQuery.First(&hotel, "id = ?", hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch hotel: %w", err)
		}
		if err := tx.Find(&hotel.Rooms, "hotel_id = ?", hotelID).Error; err != nil {
			return fmt.Errorf("fetch rooms: %w", err)
		}
		if err := tx.Find(&hotel.Bookings, "hotel_id = ?", hotelID).Error; err != nil {
			return fmt.Errorf("fetch bookings: %w", err)
		}

		res, err := hotel.Book(candidate)
		if err != nil {
			return err
		}
		result = res
		if res.Status == models.ResultDenied {
			return nil
		}

		if err := tx.Create(candidate).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost a race the in-memory duplicate guard could not see;
				// same outcome as the pre-check.
				result = models.BookingResult{
					BookingID:     candidate.ID,
					Status:        models.ResultDenied,
					ReasonForDeny: "Booking already exists.",
				}
				return nil
			}
			return fmt.Errorf("save booking: %w", err)
		}
		if err := tx.Model(&models.Hotel{}).Where("id = ?", hotelID).
			Update("last_modified_at", hotel.LastModifiedAt).Error; err != nil {
			return fmt.Errorf("refresh hotel last_modified_at: %w", err)
		}
		return nil
	})

	return result, err
}
