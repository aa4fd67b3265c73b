package domain

import "time"

// Translation is one key-value row of the admin translations editor.
// Unique per (locale, key).
type Translation struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale" validate:"required"`
	Key       string    `json:"key" validate:"required"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
