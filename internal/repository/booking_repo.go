package repository

import (
	"context"
	"database/sql"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 string          `gorm:"column:id;primaryKey"`
	HotelID            string          `gorm:"column:hotel_id;index"`
	RoomTypeID         string          `gorm:"column:room_type_id;index"`
	UserID             string          `gorm:"column:user_id;index"`
	CheckInDate        time.Time       `gorm:"column:check_in_date;type:date"`
	CheckOutDate       time.Time       `gorm:"column:check_out_date;type:date"`
	Guests             int             `gorm:"column:guests"`
	TotalPrice         decimal.Decimal `gorm:"column:total_price;type:numeric"`
	Status             string          `gorm:"column:status;index"`
	PaymentStatus      string          `gorm:"column:payment_status"`
	Notes              *string         `gorm:"column:notes"`
	CancellationReason *string         `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
	CancelledAt        *time.Time      `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		HotelID:            m.HotelID,
		RoomTypeID:         m.RoomTypeID,
		UserID:             m.UserID,
		CheckIn:            m.CheckInDate,
		CheckOut:           m.CheckOutDate,
		Guests:             m.Guests,
		TotalPrice:         m.TotalPrice,
		Status:             domain.BookingStatus(m.Status),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		HotelID:            b.HotelID,
		RoomTypeID:         b.RoomTypeID,
		UserID:             b.UserID,
		CheckInDate:        b.CheckIn,
		CheckOutDate:       b.CheckOut,
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// CreateWithCapacityCheck inserts the booking only if the number of active
// bookings overlapping [b.CheckIn, b.CheckOut) is still below capacity. The
// count and the insert run in one serializable transaction so two concurrent
// callers cannot both take the last room. Returns false when capacity is
// exhausted.
func (r *BookingRepository) CreateWithCapacityCheck(ctx context.Context, b *domain.Booking, capacity int) (bool, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := `
SELECT COUNT(1)
FROM bookings
WHERE room_type_id = ?
  AND status IN ('pending', 'confirmed')
  AND check_in_date < ?
  AND check_out_date > ?
`
		if err := tx.Raw(q, b.RoomTypeID, b.CheckOut, b.CheckIn).Scan(&cnt).Error; err != nil {
			return err
		}
		if cnt >= int64(capacity) {
			return nil
		}
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		created = true
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// OverlapCount is the number of active bookings of one room type that
// intersect a requested stay.
type OverlapCount struct {
	RoomTypeID string `gorm:"column:room_type_id"`
	Count      int    `gorm:"column:cnt"`
}

// CountActiveOverlapping returns, per room type of the hotel, how many
// pending or confirmed bookings intersect [checkIn, checkOut) under
// half-open semantics. Room types with zero overlaps are absent.
func (r *BookingRepository) CountActiveOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (map[string]int, error) {
	var rows []OverlapCount
	q := `
SELECT room_type_id, COUNT(1) AS cnt
FROM bookings
WHERE hotel_id = ?
  AND status IN ('pending', 'confirmed')
  AND check_in_date < ?
  AND check_out_date > ?
GROUP BY room_type_id
`
	tx := r.db.WithContext(ctx).Raw(q, hotelID, checkOut, checkIn).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.RoomTypeID] = row.Count
	}
	return out, nil
}

func (r *BookingRepository) CountActiveOverlappingForRoomType(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE room_type_id = ?
  AND status IN ('pending', 'confirmed')
  AND check_in_date < ?
  AND check_out_date > ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomTypeID, checkOut, checkIn).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

// UserBookingDetails is a booking row joined with hotel and room type names
// for the "my bookings" listing.
type UserBookingDetails struct {
	ID           string          `gorm:"column:id"`
	Status       string          `gorm:"column:status"`
	CheckInDate  time.Time       `gorm:"column:check_in_date"`
	CheckOutDate time.Time       `gorm:"column:check_out_date"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price"`
	RoomTypeID   string          `gorm:"column:room_type_id"`
	RoomTypeName string          `gorm:"column:room_type_name"`
	HotelID      string          `gorm:"column:hotel_id"`
	HotelName    string          `gorm:"column:hotel_name"`
}

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID string, limit, offset int) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	q := `
SELECT b.id, b.status, b.check_in_date, b.check_out_date, b.total_price,
       b.room_type_id, rt.name AS room_type_name,
       b.hotel_id, h.name AS hotel_name
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
JOIN hotels h ON h.id = b.hotel_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByHotelID(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("check_in_date DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("payment_status", string(status)).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}

func (r *BookingRepository) HasCompletedBookingForHotel(ctx context.Context, userID, hotelID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("user_id = ? AND hotel_id = ? AND status = ?", userID, hotelID, string(domain.BookingCompleted)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
