package availability

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RoomTypeAvailability is the per-room-type result of an availability check
// for one requested stay.
type RoomTypeAvailability struct {
	RoomTypeID     string           `json:"room_type_id"`
	TotalRooms     int              `json:"total_rooms"`
	BookedRooms    int              `json:"booked_rooms"`
	AvailableRooms int              `json:"available_rooms"`
	PriceForDates  *decimal.Decimal `json:"price_for_dates"`
	IsBlocked      bool             `json:"is_blocked"`
}

type Service struct {
	roomTypes RoomTypeReader
	bookings  BookingCounter
	blocks    BlockReader
	rates     RateReader
}

func NewService(roomTypes RoomTypeReader, bookings BookingCounter, blocks BlockReader, rates RateReader) *Service {
	return &Service{
		roomTypes: roomTypes,
		bookings:  bookings,
		blocks:    blocks,
		rates:     rates,
	}
}

// ComputeAvailability reports, for every room type of the hotel, how many
// rooms can still be booked for the half-open stay [checkIn, checkOut) and
// what the stay costs. Bookings in pending or confirmed status consume
// inventory; an intersecting block forces availability to zero; per-date
// rates override the base price night by night.
//
// A hotel with no room types yields an empty slice. Read failures are
// returned to the caller rather than collapsed into an empty result, so
// "could not determine" stays distinguishable from "sold out".
func (s *Service) ComputeAvailability(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]RoomTypeAvailability, error) {
	roomTypes, err := s.roomTypes.GetByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if len(roomTypes) == 0 {
		return []RoomTypeAvailability{}, nil
	}

	roomTypeIDs := make([]string, 0, len(roomTypes))
	for _, rt := range roomTypes {
		roomTypeIDs = append(roomTypeIDs, rt.ID)
	}

	// The three reads have no data dependency on each other.
	var (
		blocks []domain.AvailabilityBlock
		counts map[string]int
		rates  []domain.RoomRate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocks, err = s.blocks.GetIntersecting(gctx, hotelID, roomTypeIDs, checkIn, checkOut)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.bookings.CountActiveOverlapping(gctx, hotelID, checkIn, checkOut)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = s.rates.GetForHotelRange(gctx, hotelID, checkIn, checkOut)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hotelBlocked, blockedRoomTypes := resolveBlocks(blocks)
	nights := datesBetween(checkIn, checkOut)

	ratesByRoomType := make(map[string][]domain.RoomRate)
	for _, r := range rates {
		ratesByRoomType[r.RoomTypeID] = append(ratesByRoomType[r.RoomTypeID], r)
	}

	out := make([]RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		rtRates := ratesByRoomType[rt.ID]
		_, blocked := blockedRoomTypes[rt.ID]
		out = append(out, buildResult(rt, counts[rt.ID], hotelBlocked || blocked, rtRates, nights))
	}
	return out, nil
}

// CheckRoomType runs the same computation for a single room type. A room
// type that does not exist reports as unavailable.
func (s *Service) CheckRoomType(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*RoomTypeAvailability, error) {
	rt, err := s.roomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RoomTypeAvailability{RoomTypeID: roomTypeID}, nil
		}
		return nil, err
	}

	var (
		blocks []domain.AvailabilityBlock
		booked int
		rates  []domain.RoomRate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocks, err = s.blocks.GetIntersecting(gctx, rt.HotelID, []string{rt.ID}, checkIn, checkOut)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = s.bookings.CountActiveOverlappingForRoomType(gctx, rt.ID, checkIn, checkOut)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = s.rates.GetForRoomTypeRange(gctx, rt.ID, checkIn, checkOut)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hotelBlocked, blockedRoomTypes := resolveBlocks(blocks)
	_, blocked := blockedRoomTypes[rt.ID]
	res := buildResult(*rt, booked, hotelBlocked || blocked, rates, datesBetween(checkIn, checkOut))
	return &res, nil
}

// resolveBlocks splits intersecting blocks into a hotel-wide flag and the
// set of individually blocked room types. A hotel-wide block (null room
// type) supersedes everything else.
func resolveBlocks(blocks []domain.AvailabilityBlock) (bool, map[string]struct{}) {
	hotelBlocked := false
	blocked := make(map[string]struct{})
	for _, b := range blocks {
		if b.RoomTypeID == nil {
			hotelBlocked = true
			continue
		}
		blocked[*b.RoomTypeID] = struct{}{}
	}
	return hotelBlocked, blocked
}

func buildResult(rt domain.RoomType, booked int, isBlocked bool, rates []domain.RoomRate, nights []string) RoomTypeAvailability {
	available := 0
	if !isBlocked {
		available = effectiveCapacity(rt.AvailableRooms, rates, nights) - booked
		if available < 0 {
			available = 0
		}
	}

	return RoomTypeAvailability{
		RoomTypeID:     rt.ID,
		TotalRooms:     rt.AvailableRooms,
		BookedRooms:    booked,
		AvailableRooms: available,
		PriceForDates:  stayPrice(rt.BasePrice, rates, nights),
		IsBlocked:      isBlocked,
	}
}

// MergedRoomType decorates a room type with the outcome of an availability
// check for display.
type MergedRoomType struct {
	domain.RoomType
	DynamicAvailability int              `json:"dynamic_availability"`
	PriceForDates       *decimal.Decimal `json:"price_for_dates"`
	IsBlocked           bool             `json:"is_blocked"`
}

// MergeRoomTypesWithAvailability left-joins room types with availability
// results by room type ID. Room types without a result fall back to their
// static inventory count and a nil price.
func MergeRoomTypesWithAvailability(roomTypes []domain.RoomType, results []RoomTypeAvailability) []MergedRoomType {
	byID := make(map[string]RoomTypeAvailability, len(results))
	for _, res := range results {
		byID[res.RoomTypeID] = res
	}

	out := make([]MergedRoomType, 0, len(roomTypes))
	for _, rt := range roomTypes {
		m := MergedRoomType{RoomType: rt, DynamicAvailability: rt.AvailableRooms}
		if res, ok := byID[rt.ID]; ok {
			m.DynamicAvailability = res.AvailableRooms
			m.PriceForDates = res.PriceForDates
			m.IsBlocked = res.IsBlocked
		}
		out = append(out, m)
	}
	return out
}
