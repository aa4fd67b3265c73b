package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

type roomTypeModel struct {
	ID             string          `gorm:"column:id;primaryKey"`
	HotelID        string          `gorm:"column:hotel_id;index"`
	Name           string          `gorm:"column:name"`
	Description    string          `gorm:"column:description"`
	Capacity       int             `gorm:"column:capacity"`
	AvailableRooms int             `gorm:"column:available_rooms"`
	BasePrice      decimal.Decimal `gorm:"column:base_price;type:numeric"`
	Amenities      []string        `gorm:"column:amenities;serializer:json"`
	Photos         []string        `gorm:"column:photos;serializer:json"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (roomTypeModel) TableName() string { return "room_types" }

func toDomainRoomType(m roomTypeModel) domain.RoomType {
	return domain.RoomType{
		ID:             m.ID,
		HotelID:        m.HotelID,
		Name:           m.Name,
		Description:    m.Description,
		Capacity:       m.Capacity,
		AvailableRooms: m.AvailableRooms,
		BasePrice:      m.BasePrice,
		Amenities:      m.Amenities,
		Photos:         m.Photos,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toRoomTypeModel(rt *domain.RoomType) roomTypeModel {
	return roomTypeModel{
		ID:             rt.ID,
		HotelID:        rt.HotelID,
		Name:           rt.Name,
		Description:    rt.Description,
		Capacity:       rt.Capacity,
		AvailableRooms: rt.AvailableRooms,
		BasePrice:      rt.BasePrice,
		Amenities:      rt.Amenities,
		Photos:         rt.Photos,
		CreatedAt:      rt.CreatedAt,
		UpdatedAt:      rt.UpdatedAt,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	m := toRoomTypeModel(rt)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rt = toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id string) (*domain.RoomType, error) {
	var m roomTypeModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	rt := toDomainRoomType(m)
	return &rt, nil
}

func (r *RoomTypeRepository) GetByHotelID(ctx context.Context, hotelID string) ([]domain.RoomType, error) {
	var ms []roomTypeModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("base_price ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomType, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRoomType(m))
	}
	return out, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	m := toRoomTypeModel(rt)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&roomTypeModel{}, "id = ?", id).Error
}
