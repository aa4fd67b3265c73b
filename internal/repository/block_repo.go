package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityBlockRepository struct {
	db *gorm.DB
}

func NewAvailabilityBlockRepository(db *gorm.DB) *AvailabilityBlockRepository {
	return &AvailabilityBlockRepository{db: db}
}

type availabilityBlockModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	HotelID    *string   `gorm:"column:hotel_id;index"`
	RoomTypeID *string   `gorm:"column:room_type_id;index"`
	StartDate  time.Time `gorm:"column:start_date;type:date"`
	EndDate    time.Time `gorm:"column:end_date;type:date"`
	BlockType  string    `gorm:"column:block_type"`
	Reason     *string   `gorm:"column:reason"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (availabilityBlockModel) TableName() string { return "availability_blocks" }

func toDomainBlock(m availabilityBlockModel) domain.AvailabilityBlock {
	var reason string
	if m.Reason != nil {
		reason = *m.Reason
	}
	return domain.AvailabilityBlock{
		ID:         m.ID,
		HotelID:    m.HotelID,
		RoomTypeID: m.RoomTypeID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		BlockType:  domain.BlockType(m.BlockType),
		Reason:     reason,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *AvailabilityBlockRepository) Create(ctx context.Context, b *domain.AvailabilityBlock) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	var reason *string
	if b.Reason != "" {
		v := b.Reason
		reason = &v
	}
	m := availabilityBlockModel{
		ID:         b.ID,
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		BlockType:  string(b.BlockType),
		Reason:     reason,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = toDomainBlock(m)
	return nil
}

// GetIntersecting returns blocks whose inclusive interval intersects the
// requested stay and which target either the whole hotel (null room type) or
// one of the given room types.
func (r *AvailabilityBlockRepository) GetIntersecting(ctx context.Context, hotelID string, roomTypeIDs []string, checkIn, checkOut time.Time) ([]domain.AvailabilityBlock, error) {
	var ms []availabilityBlockModel
	tx := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", checkOut, checkIn).
		Where("(hotel_id = ? AND room_type_id IS NULL) OR room_type_id IN ?", hotelID, roomTypeIDs).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilityBlock, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBlock(m))
	}
	return out, nil
}

func (r *AvailabilityBlockRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.AvailabilityBlock, error) {
	var ms []availabilityBlockModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ? OR room_type_id IN (?)",
			hotelID,
			r.db.Table("room_types").Select("id").Where("hotel_id = ?", hotelID)).
		Order("start_date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilityBlock, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBlock(m))
	}
	return out, nil
}

func (r *AvailabilityBlockRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&availabilityBlockModel{}, "id = ?", id).Error
}
