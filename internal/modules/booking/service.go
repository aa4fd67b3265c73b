package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings     BookingRepository
	availability AvailabilityChecker
}

func NewService(bookings BookingRepository, availability AvailabilityChecker) *Service {
	return &Service{
		bookings:     bookings,
		availability: availability,
	}
}

// CreateBooking books a stay for the user. The room type's availability is
// checked first and the price is always the calculator's, never the
// client's. The final capacity check runs inside the same transaction as the
// insert, so two concurrent requests cannot both take the last room.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest, checkIn, checkOut time.Time) (*domain.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, ErrValidation
	}

	avail, err := s.availability.CheckRoomType(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if avail.AvailableRooms <= 0 || avail.PriceForDates == nil {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		HotelID:       req.HotelID,
		RoomTypeID:    req.RoomTypeID,
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalPrice:    *avail.PriceForDates,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentUnpaid,
		Notes:         req.Notes,
	}
	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}

	// effective capacity net of blocks and per-date overrides
	capacity := avail.BookedRooms + avail.AvailableRooms
	created, err := s.bookings.CreateWithCapacityCheck(ctx, b, capacity)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrOverbooking
		}
		return nil, err
	}
	if !created {
		return nil, ErrNotAvailable
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID string, limit, offset int) ([]repository.UserBookingDetails, error) {
	return s.bookings.GetUserBookingsWithDetails(ctx, userID, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) GetBookingsByHotel(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	return s.bookings.GetByHotelID(ctx, hotelID)
}

// CancelBooking cancels with a mandatory reason. Completed and already
// cancelled bookings stay as they are.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorUserID, actorRole, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actorRole != string(domain.RoleAdmin) && b.UserID != actorUserID {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// UpdateStatus applies an admin status change, limited to the legal
// transitions of the booking lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, newStatus string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !isValidTransition(b.Status, domain.BookingStatus(newStatus)) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) (*domain.Booking, error) {
	if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func isValidTransition(from, to domain.BookingStatus) bool {
	switch from {
	case domain.BookingPending:
		return to == domain.BookingConfirmed || to == domain.BookingCancelled
	case domain.BookingConfirmed:
		return to == domain.BookingCompleted || to == domain.BookingCancelled
	default:
		return false
	}
}
