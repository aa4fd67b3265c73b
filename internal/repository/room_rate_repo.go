package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRateRepository struct {
	db *gorm.DB
}

func NewRoomRateRepository(db *gorm.DB) *RoomRateRepository {
	return &RoomRateRepository{db: db}
}

type roomRateModel struct {
	ID             string          `gorm:"column:id;primaryKey"`
	RoomTypeID     string          `gorm:"column:room_type_id;uniqueIndex:idx_room_rate_date"`
	Date           time.Time       `gorm:"column:date;type:date;uniqueIndex:idx_room_rate_date"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric"`
	AvailableRooms *int            `gorm:"column:available_rooms"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (roomRateModel) TableName() string { return "room_rates" }

func toDomainRoomRate(m roomRateModel) domain.RoomRate {
	return domain.RoomRate{
		ID:             m.ID,
		RoomTypeID:     m.RoomTypeID,
		Date:           m.Date,
		Price:          m.Price,
		AvailableRooms: m.AvailableRooms,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GetForHotelRange loads the rate rows of every room type of the hotel whose
// date falls in [checkIn, checkOut).
func (r *RoomRateRepository) GetForHotelRange(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]domain.RoomRate, error) {
	var ms []roomRateModel
	tx := r.db.WithContext(ctx).
		Where("room_type_id IN (?)",
			r.db.Table("room_types").Select("id").Where("hotel_id = ?", hotelID)).
		Where("date >= ? AND date < ?", checkIn, checkOut).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomRate, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRoomRate(m))
	}
	return out, nil
}

func (r *RoomRateRepository) GetForRoomTypeRange(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]domain.RoomRate, error) {
	var ms []roomRateModel
	tx := r.db.WithContext(ctx).
		Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, checkIn, checkOut).
		Order("date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomRate, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRoomRate(m))
	}
	return out, nil
}

// BulkUpsert applies one price (and optional per-date room count) to a set of
// dates, the admin bulk-edit operation. Existing rows for a date are updated
// in place, so at most one rate row exists per (room type, date).
func (r *RoomRateRepository) BulkUpsert(ctx context.Context, roomTypeID string, dates []time.Time, price decimal.Decimal, availableRooms *int) error {
	if len(dates) == 0 {
		return nil
	}

	now := time.Now()
	ms := make([]roomRateModel, 0, len(dates))
	for _, d := range dates {
		ms = append(ms, roomRateModel{
			ID:             uuid.NewString(),
			RoomTypeID:     roomTypeID,
			Date:           d,
			Price:          price,
			AvailableRooms: availableRooms,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_type_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "available_rooms", "updated_at"}),
		}).
		Create(&ms).Error
}

func (r *RoomRateRepository) DeleteForDates(ctx context.Context, roomTypeID string, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("room_type_id = ? AND date IN ?", roomTypeID, dates).
		Delete(&roomRateModel{}).Error
}
