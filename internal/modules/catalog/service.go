package catalog

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

const searchConcurrency = 4

type Service struct {
	hotels     HotelRepository
	roomTypes  RoomTypeRepository
	calculator AvailabilityComputer
	prices     PriceCache
	log        *zap.Logger
}

func NewService(hotels HotelRepository, roomTypes RoomTypeRepository, calculator AvailabilityComputer, prices PriceCache, log *zap.Logger) *Service {
	return &Service{
		hotels:     hotels,
		roomTypes:  roomTypes,
		calculator: calculator,
		prices:     prices,
		log:        log,
	}
}

/* ---------- SEARCH ---------- */

// SearchHotels lists hotels with, when a date range is given, the lowest
// total stay price among bookable room types. A hotel whose availability
// cannot be computed is listed with a nil price; the listing page tolerates
// partial results.
func (s *Service) SearchHotels(ctx context.Context, city, query string, limit, offset int, checkIn, checkOut *time.Time) ([]HotelSummary, error) {
	hotels, err := s.hotels.Search(ctx, city, query, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]HotelSummary, len(hotels))
	for i, h := range hotels {
		out[i] = HotelSummary{Hotel: h}
	}
	if checkIn == nil || checkOut == nil {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)
	for i := range out {
		g.Go(func() error {
			out[i].LowestPrice = s.lowestPrice(gctx, out[i].ID, *checkIn, *checkOut)
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

func (s *Service) lowestPrice(ctx context.Context, hotelID string, checkIn, checkOut time.Time) *decimal.Decimal {
	inStr := checkIn.Format("2006-01-02")
	outStr := checkOut.Format("2006-01-02")

	if price, ok := s.prices.GetLowestPrice(ctx, hotelID, inStr, outStr); ok {
		return price
	}

	results, err := s.calculator.ComputeAvailability(ctx, hotelID, checkIn, checkOut)
	if err != nil {
		s.log.Warn("lowest price unavailable",
			zap.String("hotel_id", hotelID),
			zap.Error(err),
		)
		return nil
	}

	var lowest *decimal.Decimal
	for _, r := range results {
		if r.AvailableRooms <= 0 || r.PriceForDates == nil {
			continue
		}
		if lowest == nil || r.PriceForDates.LessThan(*lowest) {
			p := *r.PriceForDates
			lowest = &p
		}
	}

	s.prices.SetLowestPrice(ctx, hotelID, inStr, outStr, lowest)
	return lowest
}

// GetHotelDetail returns the hotel with its room types merged with the
// availability result for the requested stay. Unlike the listing, a
// calculator failure here is surfaced to the caller.
func (s *Service) GetHotelDetail(ctx context.Context, hotelID string, checkIn, checkOut *time.Time) (*HotelDetail, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, ErrNotFound
	}

	roomTypes, err := s.roomTypes.GetByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	var results []availability.RoomTypeAvailability
	if checkIn != nil && checkOut != nil {
		results, err = s.calculator.ComputeAvailability(ctx, hotelID, *checkIn, *checkOut)
		if err != nil {
			return nil, err
		}
	}

	return &HotelDetail{
		Hotel:     *hotel,
		RoomTypes: availability.MergeRoomTypesWithAvailability(roomTypes, results),
	}, nil
}

/* ---------- HOTEL ---------- */

func (s *Service) CreateHotel(ctx context.Context, ownerID string, req CreateHotelRequest) (*domain.Hotel, error) {
	h := &domain.Hotel{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Photos:      req.Photos,
		IsActive:    true,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, actorID, actorRole, hotelID string, req UpdateHotelRequest) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, ErrNotFound
	}
	if h.OwnerID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.Address != nil {
		h.Address = *req.Address
	}
	if req.City != nil {
		h.City = *req.City
	}
	if req.Country != nil {
		h.Country = *req.Country
	}
	if req.Photos != nil {
		h.Photos = req.Photos
	}

	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetHotelsByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	return s.hotels.GetByOwnerID(ctx, ownerID)
}

func (s *Service) DeleteHotel(ctx context.Context, actorID, actorRole, hotelID string) error {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return ErrNotFound
	}
	if h.OwnerID != actorID && actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	return s.hotels.SoftDelete(ctx, hotelID)
}

/* ---------- ROOM TYPE ---------- */

func (s *Service) CreateRoomType(ctx context.Context, actorID, actorRole, hotelID string, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, ErrNotFound
	}
	if h.OwnerID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil || price.IsNegative() {
		return nil, ErrValidation
	}

	rt := &domain.RoomType{
		HotelID:        hotelID,
		Name:           req.Name,
		Description:    req.Description,
		Capacity:       req.Capacity,
		AvailableRooms: req.AvailableRooms,
		BasePrice:      price,
		Amenities:      req.Amenities,
		Photos:         req.Photos,
	}
	if err := s.roomTypes.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, actorID, actorRole, roomTypeID string, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		return nil, ErrNotFound
	}
	h, err := s.hotels.GetByID(ctx, rt.HotelID)
	if err != nil {
		return nil, ErrNotFound
	}
	if h.OwnerID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		rt.Name = *req.Name
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		rt.Capacity = *req.Capacity
	}
	if req.AvailableRooms != nil && *req.AvailableRooms >= 0 {
		rt.AvailableRooms = *req.AvailableRooms
	}
	if req.BasePrice != nil {
		price, err := decimal.NewFromString(*req.BasePrice)
		if err != nil || price.IsNegative() {
			return nil, ErrValidation
		}
		rt.BasePrice = price
	}
	if req.Amenities != nil {
		rt.Amenities = req.Amenities
	}
	if req.Photos != nil {
		rt.Photos = req.Photos
	}

	if err := s.roomTypes.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) DeleteRoomType(ctx context.Context, actorID, actorRole, roomTypeID string) error {
	rt, err := s.roomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		return ErrNotFound
	}
	h, err := s.hotels.GetByID(ctx, rt.HotelID)
	if err != nil {
		return ErrNotFound
	}
	if h.OwnerID != actorID && actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	return s.roomTypes.Delete(ctx, roomTypeID)
}
