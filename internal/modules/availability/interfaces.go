package availability

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// RoomTypeReader loads room type inventory and base prices.
type RoomTypeReader interface {
	GetByHotelID(ctx context.Context, hotelID string) ([]domain.RoomType, error)
	GetByID(ctx context.Context, id string) (*domain.RoomType, error)
}

// BookingCounter counts active bookings overlapping a half-open stay.
type BookingCounter interface {
	CountActiveOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (map[string]int, error)
	CountActiveOverlappingForRoomType(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
}

// BlockReader loads availability blocks intersecting a stay.
type BlockReader interface {
	GetIntersecting(ctx context.Context, hotelID string, roomTypeIDs []string, checkIn, checkOut time.Time) ([]domain.AvailabilityBlock, error)
}

// RateReader loads per-date rate overrides for a stay.
type RateReader interface {
	GetForHotelRange(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]domain.RoomRate, error)
	GetForRoomTypeRange(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]domain.RoomRate, error)
}
