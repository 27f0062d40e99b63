package models

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// UserStatus marks whether an account is usable.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// IsValid reports whether s is a recognized user status.
func (s UserStatus) IsValid() bool {
	return s == UserActive || s == UserInactive
}

// User is an application user with contact info and booking references. The
// booking collection is owned in memory only; persisted bookings hang off
// guest_id instead.
type User struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string     `gorm:"size:100" json:"name"`
	Surname     string     `gorm:"size:100" json:"surname"`
	Email       string     `gorm:"size:255;uniqueIndex" json:"email"`
	PhoneNumber string     `gorm:"column:phone_number;size:50" json:"phone_number"`
	Status      UserStatus `gorm:"size:16" json:"status"`

	Bookings *[]Booking `gorm:"-" json:"bookings,omitempty"`
}

// NormalizeEmail lowercases an address and verifies it parses as a bare,
// standard address. The stored form always equals the lowercased input.
func NormalizeEmail(email string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(lowered)
	if err != nil || addr.Address != lowered {
		return "", ErrInvalidEmail
	}
	return lowered, nil
}

// NewUser builds a user with a normalized email and a validated status.
func NewUser(id uuid.UUID, name, surname, email, phoneNumber string, status UserStatus) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &User{
		ID:          id,
		Name:        name,
		Surname:     surname,
		Email:       normalized,
		PhoneNumber: phoneNumber,
		Status:      status,
	}, nil
}

// AddBooking appends unconditionally, initializing the collection if needed.
// Duplicate policing is the hotel's responsibility, not this layer's.
func (u *User) AddBooking(b Booking) {
	if u.Bookings == nil {
		u.Bookings = &[]Booking{}
	}
	*u.Bookings = append(*u.Bookings, b)
}

// RemoveBooking drops the booking with the given id. Removing from a user
// whose collection was never initialized is an error; removing a missing id
// from an existing collection is a silent no-op. The asymmetry is contractual.
func (u *User) RemoveBooking(id uuid.UUID) error {
	if u.Bookings == nil {
		return ErrNoBookings
	}
	kept := (*u.Bookings)[:0]
	for _, b := range *u.Bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	*u.Bookings = kept
	return nil
}

// GetBookings returns the booking collection, never nil.
func (u *User) GetBookings() []Booking {
	if u.Bookings == nil {
		return []Booking{}
	}
	return *u.Bookings
}
