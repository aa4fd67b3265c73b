package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID             string          `json:"id"`
	HotelID        string          `json:"hotel_id"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description,omitempty"`
	Capacity       int             `json:"capacity" validate:"required,gt=0"`
	AvailableRooms int             `json:"available_rooms" validate:"gte=0"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Amenities      []string        `json:"amenities,omitempty"`
	Photos         []string        `json:"photos,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RoomRate overrides the base price of a room type for one calendar
// date. At most one rate exists per (room type, date). AvailableRooms,
// when set, lowers the bookable inventory for stays covering that date.
type RoomRate struct {
	ID             string          `json:"id"`
	RoomTypeID     string          `json:"room_type_id"`
	Date           time.Time       `json:"date"`
	Price          decimal.Decimal `json:"price"`
	AvailableRooms *int            `json:"available_rooms,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
