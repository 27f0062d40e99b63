package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a stay reservation for one room. The period is stored inline as
// its two canonical dates; duration is always derived, never stored.
type Booking struct {
	ID      uuid.UUID `gorm:"primaryKey;type:char(36)" json:"id"`
	GuestID uuid.UUID `gorm:"column:guest_id;type:char(36);index" json:"guest_id"`
	RoomID  uuid.UUID `gorm:"column:room_id;type:char(36);index" json:"room_id"`
	HotelID uuid.UUID `gorm:"column:hotel_id;type:char(36);index" json:"hotel_id"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	Status BookingStatus `gorm:"column:status;size:16" json:"status"`

	CreatedAt      time.Time      `gorm:"column:created_at" json:"created_at"`
	LastModifiedAt time.Time      `gorm:"column:last_modified_at" json:"last_modified_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewBooking builds a fully specified booking, validating the stay range and
// the audit timestamps. It never returns a partially built instance.
func NewBooking(
	id, guestID, roomID uuid.UUID,
	start, end time.Time,
	status BookingStatus,
	createdAt, lastModifiedAt time.Time,
) (*Booking, error) {
	if _, err := NewBookingPeriod(start, end); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if lastModifiedAt.Before(createdAt) {
		return nil, &InvalidTimestampsError{Entity: "booking", ID: id}
	}
	return &Booking{
		ID:             id,
		GuestID:        guestID,
		RoomID:         roomID,
		StartDate:      start,
		EndDate:        end,
		Status:         status,
		CreatedAt:      createdAt,
		LastModifiedAt: lastModifiedAt,
	}, nil
}

// NewPendingBooking builds an admission candidate with a fresh id and both
// audit timestamps stamped now.
func NewPendingBooking(guestID, roomID uuid.UUID, start, end time.Time) (*Booking, error) {
	now := nowFunc()
	return NewBooking(uuid.New(), guestID, roomID, start, end, StatusPending, now, now)
}

// Period returns the stay range rebuilt from the stored dates.
func (b *Booking) Period() BookingPeriod {
	return BookingPeriod{Start: b.StartDate, End: b.EndDate}
}

// Duration is the stay length in whole days.
func (b *Booking) Duration() int {
	return b.Period().Duration()
}

// UpdateStatus moves the booking to confirmed or cancelled and refreshes
// last_modified_at. Any current status may transition to either target;
// legality checks on edges are deliberately absent.
func (b *Booking) UpdateStatus(status BookingStatus) error {
	if status != StatusConfirmed && status != StatusCancelled {
		return ErrInvalidStatus
	}
	b.Status = status
	b.LastModifiedAt = nowFunc()
	return nil
}
