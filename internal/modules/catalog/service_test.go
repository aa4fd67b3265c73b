package catalog

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/availability"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock repositories

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	if h != nil {
		h.ID = "hotel-1"
	}
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Search(ctx context.Context, city, query string, limit, offset int) ([]domain.Hotel, error) {
	args := m.Called(ctx, city, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomTypeRepository struct {
	mock.Mock
}

func (m *MockRoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	if rt != nil {
		rt.ID = "rt-1"
	}
	return args.Error(0)
}

func (m *MockRoomTypeRepository) GetByID(ctx context.Context, id string) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepository) GetByHotelID(ctx context.Context, hotelID string) ([]domain.RoomType, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRoomTypeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAvailabilityComputer struct {
	mock.Mock
}

func (m *MockAvailabilityComputer) ComputeAvailability(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]availability.RoomTypeAvailability, error) {
	args := m.Called(ctx, hotelID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.RoomTypeAvailability), args.Error(1)
}

// noopPriceCache never hits and swallows writes, like a disabled redis.
type noopPriceCache struct{}

func (noopPriceCache) GetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string) (*decimal.Decimal, bool) {
	return nil, false
}

func (noopPriceCache) SetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string, price *decimal.Decimal) {
}

func newCatalogService() (*Service, *MockHotelRepository, *MockRoomTypeRepository, *MockAvailabilityComputer) {
	hotels := new(MockHotelRepository)
	roomTypes := new(MockRoomTypeRepository)
	calc := new(MockAvailabilityComputer)
	return NewService(hotels, roomTypes, calc, noopPriceCache{}, zap.NewNop()), hotels, roomTypes, calc
}

func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestService_SearchHotels_LowestBookablePrice(t *testing.T) {
	svc, hotels, _, calc := newCatalogService()

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	hotels.On("Search", mock.Anything, "Cebu", "", 20, 0).Return([]domain.Hotel{
		{ID: "h1", Name: "Seaside"},
	}, nil)
	// Cheapest room type is sold out; its price must not win.
	calc.On("ComputeAvailability", mock.Anything, "h1", checkIn, checkOut).
		Return([]availability.RoomTypeAvailability{
			{RoomTypeID: "rt1", AvailableRooms: 0, PriceForDates: dec(1500)},
			{RoomTypeID: "rt2", AvailableRooms: 2, PriceForDates: dec(2000)},
			{RoomTypeID: "rt3", AvailableRooms: 1, PriceForDates: dec(5000)},
		}, nil)

	results, err := svc.SearchHotels(context.Background(), "Cebu", "", 20, 0, &checkIn, &checkOut)

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].LowestPrice)
	assert.True(t, results[0].LowestPrice.Equal(decimal.NewFromInt(2000)))
}

func TestService_SearchHotels_NoDatesSkipsCalculator(t *testing.T) {
	svc, hotels, _, calc := newCatalogService()

	hotels.On("Search", mock.Anything, "", "", 20, 0).Return([]domain.Hotel{
		{ID: "h1"},
	}, nil)

	results, err := svc.SearchHotels(context.Background(), "", "", 20, 0, nil, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].LowestPrice)
	calc.AssertNotCalled(t, "ComputeAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SearchHotels_NothingBookable(t *testing.T) {
	svc, hotels, _, calc := newCatalogService()

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	hotels.On("Search", mock.Anything, "", "", 20, 0).Return([]domain.Hotel{{ID: "h1"}}, nil)
	calc.On("ComputeAvailability", mock.Anything, "h1", checkIn, checkOut).
		Return([]availability.RoomTypeAvailability{
			{RoomTypeID: "rt1", AvailableRooms: 0, PriceForDates: dec(1500)},
			{RoomTypeID: "rt2", AvailableRooms: 2, PriceForDates: nil, IsBlocked: true},
		}, nil)

	results, err := svc.SearchHotels(context.Background(), "", "", 20, 0, &checkIn, &checkOut)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].LowestPrice)
}

func TestService_SearchHotels_CalculatorFailureDegrades(t *testing.T) {
	// The listing tolerates a hotel whose availability cannot be computed.
	svc, hotels, _, calc := newCatalogService()

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	hotels.On("Search", mock.Anything, "", "", 20, 0).Return([]domain.Hotel{
		{ID: "h1"}, {ID: "h2"},
	}, nil)
	calc.On("ComputeAvailability", mock.Anything, "h1", checkIn, checkOut).
		Return(nil, assert.AnError)
	calc.On("ComputeAvailability", mock.Anything, "h2", checkIn, checkOut).
		Return([]availability.RoomTypeAvailability{
			{RoomTypeID: "rt1", AvailableRooms: 1, PriceForDates: dec(900)},
		}, nil)

	results, err := svc.SearchHotels(context.Background(), "", "", 20, 0, &checkIn, &checkOut)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Nil(t, results[0].LowestPrice)
	require.NotNil(t, results[1].LowestPrice)
	assert.True(t, results[1].LowestPrice.Equal(decimal.NewFromInt(900)))
}

func TestService_GetHotelDetail_SurfacesCalculatorFailure(t *testing.T) {
	svc, hotels, roomTypes, calc := newCatalogService()

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1"}, nil)
	roomTypes.On("GetByHotelID", mock.Anything, "h1").Return([]domain.RoomType{{ID: "rt1"}}, nil)
	calc.On("ComputeAvailability", mock.Anything, "h1", checkIn, checkOut).
		Return(nil, assert.AnError)

	_, err := svc.GetHotelDetail(context.Background(), "h1", &checkIn, &checkOut)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_GetHotelDetail_MergesAvailability(t *testing.T) {
	svc, hotels, roomTypes, calc := newCatalogService()

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1"}, nil)
	roomTypes.On("GetByHotelID", mock.Anything, "h1").Return([]domain.RoomType{
		{ID: "rt1", AvailableRooms: 5},
	}, nil)
	calc.On("ComputeAvailability", mock.Anything, "h1", checkIn, checkOut).
		Return([]availability.RoomTypeAvailability{
			{RoomTypeID: "rt1", AvailableRooms: 2, PriceForDates: dec(2000)},
		}, nil)

	detail, err := svc.GetHotelDetail(context.Background(), "h1", &checkIn, &checkOut)

	require.NoError(t, err)
	require.Len(t, detail.RoomTypes, 1)
	assert.Equal(t, 2, detail.RoomTypes[0].DynamicAvailability)
}

func TestService_GetHotelDetail_NoDates(t *testing.T) {
	svc, hotels, roomTypes, calc := newCatalogService()

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1"}, nil)
	roomTypes.On("GetByHotelID", mock.Anything, "h1").Return([]domain.RoomType{
		{ID: "rt1", AvailableRooms: 5},
	}, nil)

	detail, err := svc.GetHotelDetail(context.Background(), "h1", nil, nil)

	require.NoError(t, err)
	require.Len(t, detail.RoomTypes, 1)
	assert.Equal(t, 5, detail.RoomTypes[0].DynamicAvailability)
	assert.Nil(t, detail.RoomTypes[0].PriceForDates)
	calc.AssertNotCalled(t, "ComputeAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateHotel_OwnerOnly(t *testing.T) {
	svc, hotels, _, _ := newCatalogService()

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1", OwnerID: "owner-1"}, nil)

	name := "New Name"
	_, err := svc.UpdateHotel(context.Background(), "someone-else", string(domain.RoleHotelOwner), "h1", UpdateHotelRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateHotel_AdminOverride(t *testing.T) {
	svc, hotels, _, _ := newCatalogService()

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1", OwnerID: "owner-1"}, nil)
	hotels.On("Update", mock.Anything, mock.Anything).Return(nil)

	name := "Renamed"
	h, err := svc.UpdateHotel(context.Background(), "admin-1", string(domain.RoleAdmin), "h1", UpdateHotelRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", h.Name)
}

func TestService_CreateRoomType_RejectsBadPrice(t *testing.T) {
	svc, hotels, _, _ := newCatalogService()

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1", OwnerID: "owner-1"}, nil)

	_, err := svc.CreateRoomType(context.Background(), "owner-1", string(domain.RoleHotelOwner), "h1", CreateRoomTypeRequest{
		Name: "Deluxe", Capacity: 2, AvailableRooms: 5, BasePrice: "not-a-number",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateRoomType(context.Background(), "owner-1", string(domain.RoleHotelOwner), "h1", CreateRoomTypeRequest{
		Name: "Deluxe", Capacity: 2, AvailableRooms: 5, BasePrice: "-100",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateRoomType_Success(t *testing.T) {
	svc, hotels, roomTypes, _ := newCatalogService()

	hotels.On("GetByID", mock.Anything, "h1").Return(&domain.Hotel{ID: "h1", OwnerID: "owner-1"}, nil)
	roomTypes.On("Create", mock.Anything, mock.Anything).Return(nil)

	rt, err := svc.CreateRoomType(context.Background(), "owner-1", string(domain.RoleHotelOwner), "h1", CreateRoomTypeRequest{
		Name: "Deluxe", Capacity: 2, AvailableRooms: 5, BasePrice: "1000.50",
	})

	require.NoError(t, err)
	assert.True(t, rt.BasePrice.Equal(decimal.RequireFromString("1000.50")))
	assert.Equal(t, "h1", rt.HotelID)
}
