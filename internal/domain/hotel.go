package domain

import "time"

type Hotel struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description,omitempty"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	Rating       float64    `json:"rating"`
	TotalReviews int        `json:"total_reviews"`
	Photos       []string   `json:"photos,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`

	RoomTypes []RoomType `json:"room_types,omitempty"`
}
