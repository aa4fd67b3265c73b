package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsActive reports whether the booking still counts against inventory.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking holds a half-open stay [CheckIn, CheckOut): the checkout date is
// not a booked night, so back-to-back stays never conflict.
type Booking struct {
	ID            string          `json:"id"`
	HotelID       string          `json:"hotel_id" validate:"required"`
	RoomTypeID    string          `json:"room_type_id" validate:"required"`
	UserID        string          `json:"user_id" validate:"required"`
	CheckIn       time.Time       `json:"check_in" validate:"required"`
	CheckOut      time.Time       `json:"check_out" validate:"required"`
	Guests        int             `json:"guests"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        BookingStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
}
