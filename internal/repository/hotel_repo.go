package repository

import (
	"context"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	OwnerID      string     `gorm:"column:owner_id;index"`
	Name         string     `gorm:"column:name"`
	Description  string     `gorm:"column:description"`
	Address      string     `gorm:"column:address"`
	City         string     `gorm:"column:city;index"`
	Country      string     `gorm:"column:country"`
	Rating       float64    `gorm:"column:rating"`
	TotalReviews int        `gorm:"column:total_reviews"`
	Photos       []string   `gorm:"column:photos;serializer:json"`
	IsActive     bool       `gorm:"column:is_active"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) domain.Hotel {
	return domain.Hotel{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Description:  m.Description,
		Address:      m.Address,
		City:         m.City,
		Country:      m.Country,
		Rating:       m.Rating,
		TotalReviews: m.TotalReviews,
		Photos:       m.Photos,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Name:         h.Name,
		Description:  h.Description,
		Address:      h.Address,
		City:         h.City,
		Country:      h.Country,
		Rating:       h.Rating,
		TotalReviews: h.TotalReviews,
		Photos:       h.Photos,
		IsActive:     h.IsActive,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
		DeletedAt:    h.DeletedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, "id = ? AND deleted_at IS NULL", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	h := toDomainHotel(m)
	return &h, nil
}

// Search lists active hotels, optionally filtered by city and a free-text
// match on name.
func (r *HotelRepository) Search(ctx context.Context, city, query string, limit, offset int) ([]domain.Hotel, error) {
	tx := r.db.WithContext(ctx).
		Where("is_active = ? AND deleted_at IS NULL", true)

	if city != "" {
		tx = tx.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var ms []hotelModel
	tx = tx.Order("rating DESC").Limit(limit).Offset(offset).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	var ms []hotelModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *HotelRepository) UpdateRating(ctx context.Context, hotelID string, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).
		Model(&hotelModel{}).
		Where("id = ?", hotelID).
		Updates(map[string]any{"rating": rating, "total_reviews": totalReviews}).Error
}

func (r *HotelRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&hotelModel{}).
		Where("id = ?", id).
		Update("deleted_at", &now).Error
}
