package domain

import "time"

type UserRole string

const (
	RoleGuest      UserRole = "guest"
	RoleHotelOwner UserRole = "hotel_owner"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
