package catalog

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"

	"github.com/shopspring/decimal"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	Search(ctx context.Context, city, query string, limit, offset int) ([]domain.Hotel, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	SoftDelete(ctx context.Context, id string) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id string) (*domain.RoomType, error)
	GetByHotelID(ctx context.Context, hotelID string) ([]domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	Delete(ctx context.Context, id string) error
}

// AvailabilityComputer is the per-hotel availability calculator.
type AvailabilityComputer interface {
	ComputeAvailability(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]availability.RoomTypeAvailability, error)
}

// PriceCache memoizes lowest prices per hotel and range. Implementations
// must tolerate a nil receiver.
type PriceCache interface {
	GetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string) (*decimal.Decimal, bool)
	SetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string, price *decimal.Decimal)
}
