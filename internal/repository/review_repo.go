package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	HotelID   string    `gorm:"column:hotel_id;uniqueIndex:idx_review_once"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_review_once"`
	BookingID *string   `gorm:"column:booking_id"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	IsHidden  bool      `gorm:"column:is_hidden"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	return domain.Review{
		ID:        m.ID,
		HotelID:   m.HotelID,
		UserID:    m.UserID,
		BookingID: m.BookingID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		IsHidden:  m.IsHidden,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	m := reviewModel{
		ID:        rv.ID,
		HotelID:   rv.HotelID,
		UserID:    rv.UserID,
		BookingID: rv.BookingID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID string, includeHidden bool) ([]domain.Review, error) {
	tx := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if !includeHidden {
		tx = tx.Where("is_hidden = ?", false)
	}

	var ms []reviewModel
	tx = tx.Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

// RatingSummary returns the average rating and count of visible reviews.
func (r *ReviewRepository) RatingSummary(ctx context.Context, hotelID string) (float64, int, error) {
	var row struct {
		Avg float64 `gorm:"column:avg_rating"`
		Cnt int     `gorm:"column:cnt"`
	}
	q := `
SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(1) AS cnt
FROM reviews
WHERE hotel_id = ? AND is_hidden = ?
`
	tx := r.db.WithContext(ctx).Raw(q, hotelID, false).Scan(&row)
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	return row.Avg, row.Cnt, nil
}

func (r *ReviewRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	return r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", id).
		Update("is_hidden", hidden).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&reviewModel{}, "id = ?", id).Error
}
