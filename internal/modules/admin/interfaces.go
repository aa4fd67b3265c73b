package admin

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
)

type RateRepository interface {
	BulkUpsert(ctx context.Context, roomTypeID string, dates []time.Time, price decimal.Decimal, availableRooms *int) error
	DeleteForDates(ctx context.Context, roomTypeID string, dates []time.Time) error
	GetForRoomTypeRange(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]domain.RoomRate, error)
}

type BlockRepository interface {
	Create(ctx context.Context, b *domain.AvailabilityBlock) error
	ListByHotel(ctx context.Context, hotelID string) ([]domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateRole(ctx context.Context, userID string, role domain.UserRole) error
	SetActive(ctx context.Context, userID string, active bool) error
}

type ReviewRepository interface {
	ListByHotel(ctx context.Context, hotelID string, includeHidden bool) ([]domain.Review, error)
	SetHidden(ctx context.Context, id string, hidden bool) error
	Delete(ctx context.Context, id string) error
}

type TranslationRepository interface {
	Upsert(ctx context.Context, t *domain.Translation) error
	ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error)
	Delete(ctx context.Context, locale, key string) error
}

// BookingManager is the slice of the booking service the admin dashboard
// uses.
type BookingManager interface {
	GetBookingsByHotel(ctx context.Context, hotelID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, newStatus string) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) (*domain.Booking, error)
}
