package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotel_id"`
	UserID    string    `json:"user_id"`
	BookingID *string   `json:"booking_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
