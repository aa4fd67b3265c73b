package catalog

import (
	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"

	"github.com/shopspring/decimal"
)

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country"`
	Photos      []string `json:"photos"`
}

type UpdateHotelRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Photos      []string `json:"photos"`
}

type CreateRoomTypeRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Capacity       int      `json:"capacity" binding:"required,gt=0"`
	AvailableRooms int      `json:"available_rooms" binding:"gte=0"`
	BasePrice      string   `json:"base_price" binding:"required"`
	Amenities      []string `json:"amenities"`
	Photos         []string `json:"photos"`
}

type UpdateRoomTypeRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Capacity       *int     `json:"capacity"`
	AvailableRooms *int     `json:"available_rooms"`
	BasePrice      *string  `json:"base_price"`
	Amenities      []string `json:"amenities"`
	Photos         []string `json:"photos"`
}

// HotelSummary is one row of the search listing: the hotel plus the lowest
// total stay price over its bookable room types, nil when nothing is
// bookable or no dates were given.
type HotelSummary struct {
	domain.Hotel
	LowestPrice *decimal.Decimal `json:"lowest_price"`
}

type HotelDetail struct {
	Hotel     domain.Hotel                  `json:"hotel"`
	RoomTypes []availability.MergedRoomType `json:"room_types"`
}
