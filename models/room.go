package models

import "github.com/google/uuid"

// RoomSize classifies a room's capacity.
type RoomSize string

const (
	SizeSingle    RoomSize = "single"
	SizeDouble    RoomSize = "double"
	SizeTriple    RoomSize = "triple"
	SizeQuadruple RoomSize = "quadruple"
	SizeMultiple  RoomSize = "multiple"
)

// IsValid reports whether s is a recognized room size.
func (s RoomSize) IsValid() bool {
	switch s {
	case SizeSingle, SizeDouble, SizeTriple, SizeQuadruple, SizeMultiple:
		return true
	}
	return false
}

// Room is a sellable unit inside a hotel. Number is unique per hotel.
type Room struct {
	ID      uuid.UUID `gorm:"primaryKey;type:char(36)" json:"id"`
	HotelID uuid.UUID `gorm:"column:hotel_id;type:char(36);uniqueIndex:idx_hotel_room_number" json:"hotel_id"`
	Number  string    `gorm:"column:number;size:50;uniqueIndex:idx_hotel_room_number" json:"number"`
	Size    RoomSize  `gorm:"column:size;size:16" json:"size"`
	Price   float64   `gorm:"column:price" json:"price"`
}

// NewRoom builds a room, enforcing positive pricing and a known size.
func NewRoom(id, hotelID uuid.UUID, number string, size RoomSize, price float64) (*Room, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	return &Room{
		ID:      id,
		HotelID: hotelID,
		Number:  number,
		Size:    size,
		Price:   price,
	}, nil
}
