package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

type translationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Locale    string    `gorm:"column:locale;uniqueIndex:idx_locale_key"`
	Key       string    `gorm:"column:key;uniqueIndex:idx_locale_key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (translationModel) TableName() string { return "translations" }

func (r *TranslationRepository) Upsert(ctx context.Context, t *domain.Translation) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m := translationModel{
		ID:        t.ID,
		Locale:    t.Locale,
		Key:       t.Key,
		Value:     t.Value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "locale"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}

func (r *TranslationRepository) ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error) {
	var ms []translationModel
	tx := r.db.WithContext(ctx).
		Where("locale = ?", locale).
		Order("key ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Translation, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Translation{
			ID:        m.ID,
			Locale:    m.Locale,
			Key:       m.Key,
			Value:     m.Value,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return out, nil
}

func (r *TranslationRepository) Delete(ctx context.Context, locale, key string) error {
	return r.db.WithContext(ctx).
		Where("locale = ? AND key = ?", locale, key).
		Delete(&translationModel{}).Error
}
