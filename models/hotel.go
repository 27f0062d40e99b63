package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Result statuses for a booking request. Distinct from BookingStatus: a denial
// is a normal business outcome, not a booking lifecycle state.
const (
	ResultConfirmed = "confirmed"
	ResultDenied    = "denied"
)

// BookingResult is the typed outcome of an admission request. Denials carry a
// human-readable reason; confirmations leave it empty.
type BookingResult struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Status        string    `json:"status"`
	ReasonForDeny string    `json:"reason_for_deny,omitempty"`
}

func denied(bookingID uuid.UUID, reason string) BookingResult {
	return BookingResult{BookingID: bookingID, Status: ResultDenied, ReasonForDeny: reason}
}

// Hotel is the aggregate root owning its rooms and bookings. In memory the
// collections are held by value; persisted, they are separate relations keyed
// by hotel_id.
type Hotel struct {
	ID          uuid.UUID      `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	PhoneNumber string         `gorm:"column:phone_number;size:50" json:"phone_number,omitempty"`
	Email       string         `gorm:"size:255" json:"email,omitempty"`
	Address     string         `gorm:"size:255" json:"address"`
	City        string         `gorm:"size:100" json:"city"`
	Country     string         `gorm:"size:100" json:"country"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Rooms    []Room    `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Bookings []Booking `gorm:"foreignKey:HotelID" json:"bookings,omitempty"`

	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	LastModifiedAt time.Time `gorm:"column:last_modified_at" json:"last_modified_at"`
}

// NewHotel builds a hotel, enforcing chronological consistency of the audit
// timestamps.
func NewHotel(
	id uuid.UUID,
	name, phoneNumber, email, address, city, country string,
	createdAt, lastModifiedAt time.Time,
) (*Hotel, error) {
	if lastModifiedAt.Before(createdAt) {
		return nil, &InvalidTimestampsError{Entity: "hotel", ID: id}
	}
	return &Hotel{
		ID:             id,
		Name:           name,
		PhoneNumber:    phoneNumber,
		Email:          email,
		Address:        address,
		City:           city,
		Country:        country,
		CreatedAt:      createdAt,
		LastModifiedAt: lastModifiedAt,
	}, nil
}

func (h *Hotel) hasRoom(roomID uuid.UUID) bool {
	for i := range h.Rooms {
		if h.Rooms[i].ID == roomID {
			return true
		}
	}
	return false
}

// Book runs admission control for a candidate booking. The guards run in a
// fixed order so the winning denial reason stays predictable: duplicate id,
// then room existence, then availability. A denial leaves the aggregate
// untouched; a non-pending candidate is caller misuse and fails the call
// itself rather than producing a denial.
func (h *Hotel) Book(candidate *Booking) (BookingResult, error) {
	if candidate.Status != StatusPending {
		return BookingResult{}, ErrInvalidState
	}

	for i := range h.Bookings {
		if h.Bookings[i].ID == candidate.ID {
			return denied(candidate.ID, "Booking already exists."), nil
		}
	}

	if !h.hasRoom(candidate.RoomID) {
		return denied(candidate.ID, fmt.Sprintf("Room %s does not exist in the hotel.", candidate.RoomID)), nil
	}

	period := candidate.Period()
	for i := range h.Bookings {
		existing := &h.Bookings[i]
		if existing.RoomID != candidate.RoomID || existing.Status == StatusCancelled {
			continue
		}
		if period.Overlaps(existing.Period()) {
			return denied(candidate.ID, "Requested period is not available."), nil
		}
	}

	if err := candidate.UpdateStatus(StatusConfirmed); err != nil {
		return BookingResult{}, err
	}
	candidate.HotelID = h.ID
	h.Bookings = append(h.Bookings, *candidate)
	h.LastModifiedAt = nowFunc()

	return BookingResult{BookingID: candidate.ID, Status: ResultConfirmed}, nil
}
