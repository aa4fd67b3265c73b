package admin

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"

	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("validation error")

type Service struct {
	rates        RateRepository
	blocks       BlockRepository
	users        UserRepository
	reviews      ReviewRepository
	translations TranslationRepository
	bookings     BookingManager
}

func NewService(
	rates RateRepository,
	blocks BlockRepository,
	users UserRepository,
	reviews ReviewRepository,
	translations TranslationRepository,
	bookings BookingManager,
) *Service {
	return &Service{
		rates:        rates,
		blocks:       blocks,
		users:        users,
		reviews:      reviews,
		translations: translations,
		bookings:     bookings,
	}
}

/* ---------- RATES ---------- */

// BulkSetRates applies one price to every selected date, the calendar
// bulk-edit. Dates are deduplicated; a date edited twice in one request
// keeps the single given price.
func (s *Service) BulkSetRates(ctx context.Context, roomTypeID string, req BulkSetRatesRequest) error {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return ErrValidation
	}
	if req.AvailableRooms != nil && *req.AvailableRooms < 0 {
		return ErrValidation
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return ErrValidation
	}

	return s.rates.BulkUpsert(ctx, roomTypeID, dates, price, req.AvailableRooms)
}

func (s *Service) DeleteRates(ctx context.Context, roomTypeID string, req DeleteRatesRequest) error {
	dates, err := parseDates(req.Dates)
	if err != nil {
		return ErrValidation
	}
	return s.rates.DeleteForDates(ctx, roomTypeID, dates)
}

func (s *Service) GetRates(ctx context.Context, roomTypeID string, from, to time.Time) ([]domain.RoomRate, error) {
	return s.rates.GetForRoomTypeRange(ctx, roomTypeID, from, to)
}

func parseDates(raw []string) ([]time.Time, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		d, err := availability.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

/* ---------- BLOCKS ---------- */

func (s *Service) CreateBlock(ctx context.Context, req CreateBlockRequest) (*domain.AvailabilityBlock, error) {
	if req.HotelID == nil && req.RoomTypeID == nil {
		return nil, ErrValidation
	}

	blockType, ok := domain.ParseBlockType(req.BlockType)
	if !ok {
		return nil, ErrValidation
	}

	start, err := availability.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := availability.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}

	b := &domain.AvailabilityBlock{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		BlockType:  blockType,
		Reason:     req.Reason,
	}
	if err := s.blocks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBlocks(ctx context.Context, hotelID string) ([]domain.AvailabilityBlock, error) {
	return s.blocks.ListByHotel(ctx, hotelID)
}

func (s *Service) DeleteBlock(ctx context.Context, id string) error {
	return s.blocks.Delete(ctx, id)
}

/* ---------- BOOKINGS ---------- */

func (s *Service) ListHotelBookings(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	return s.bookings.GetBookingsByHotel(ctx, hotelID)
}

func (s *Service) SetBookingStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error) {
	return s.bookings.UpdateStatus(ctx, bookingID, status)
}

func (s *Service) SetPaymentStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error) {
	switch domain.PaymentStatus(status) {
	case domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return nil, ErrValidation
	}
	return s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentStatus(status))
}

/* ---------- USERS ---------- */

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *Service) UpdateUserRole(ctx context.Context, userID, role string) error {
	switch domain.UserRole(role) {
	case domain.RoleGuest, domain.RoleHotelOwner, domain.RoleAdmin:
	default:
		return ErrValidation
	}
	return s.users.UpdateRole(ctx, userID, domain.UserRole(role))
}

func (s *Service) SetUserActive(ctx context.Context, userID string, active bool) error {
	return s.users.SetActive(ctx, userID, active)
}

/* ---------- REVIEWS ---------- */

func (s *Service) ListHotelReviews(ctx context.Context, hotelID string) ([]domain.Review, error) {
	return s.reviews.ListByHotel(ctx, hotelID, true)
}

func (s *Service) SetReviewHidden(ctx context.Context, reviewID string, hidden bool) error {
	return s.reviews.SetHidden(ctx, reviewID, hidden)
}

func (s *Service) DeleteReview(ctx context.Context, reviewID string) error {
	return s.reviews.Delete(ctx, reviewID)
}

/* ---------- TRANSLATIONS ---------- */

func (s *Service) UpsertTranslation(ctx context.Context, req UpsertTranslationRequest) error {
	return s.translations.Upsert(ctx, &domain.Translation{
		Locale: req.Locale,
		Key:    req.Key,
		Value:  req.Value,
	})
}

func (s *Service) ListTranslations(ctx context.Context, locale string) ([]domain.Translation, error) {
	return s.translations.ListByLocale(ctx, locale)
}

func (s *Service) DeleteTranslation(ctx context.Context, locale, key string) error {
	return s.translations.Delete(ctx, locale, key)
}
