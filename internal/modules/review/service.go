package review

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

// BookingGate checks whether the user actually stayed at the hotel.
type BookingGate interface {
	HasCompletedBookingForHotel(ctx context.Context, userID, hotelID string) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByHotel(ctx context.Context, hotelID string, includeHidden bool) ([]domain.Review, error)
	RatingSummary(ctx context.Context, hotelID string) (float64, int, error)
}

type HotelRatingWriter interface {
	UpdateRating(ctx context.Context, hotelID string, rating float64, totalReviews int) error
}

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	hotels   HotelRatingWriter
}

func NewService(reviews ReviewRepository, bookings BookingGate, hotels HotelRatingWriter) *Service {
	return &Service{reviews: reviews, bookings: bookings, hotels: hotels}
}

type CreateReviewRequest struct {
	HotelID   string  `json:"hotel_id" binding:"required"`
	BookingID *string `json:"booking_id"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   string  `json:"comment"`
}

// Create stores a review, gated on a completed booking, then refreshes the
// hotel's aggregate rating.
func (s *Service) Create(ctx context.Context, userID string, req CreateReviewRequest) (*domain.Review, error) {
	if userID == "" || req.HotelID == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	ok, err := s.bookings.HasCompletedBookingForHotel(ctx, userID, req.HotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		HotelID:   req.HotelID,
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// aggregate refresh is best effort, the review itself is saved
	if avg, cnt, err := s.reviews.RatingSummary(ctx, req.HotelID); err == nil {
		_ = s.hotels.UpdateRating(ctx, req.HotelID, avg, cnt)
	}

	return rv, nil
}

func (s *Service) ListByHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	return s.reviews.ListByHotel(ctx, hotelID, false)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
