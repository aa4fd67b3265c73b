package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"
	"hotelbooking/internal/repository"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	CreateWithCapacityCheck(ctx context.Context, b *domain.Booking, capacity int) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetUserBookingsWithDetails(ctx context.Context, userID string, limit, offset int) ([]repository.UserBookingDetails, error)
	GetByHotelID(ctx context.Context, hotelID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	UpdatePaymentStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) error
	CancelWithReason(ctx context.Context, bookingID, reason string) error
}

// AvailabilityChecker re-checks a room type before the insert.
type AvailabilityChecker interface {
	CheckRoomType(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*availability.RoomTypeAvailability, error)
}
