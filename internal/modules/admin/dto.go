package admin

type BulkSetRatesRequest struct {
	Dates          []string `json:"dates" binding:"required,min=1"`
	Price          string   `json:"price" binding:"required"`
	AvailableRooms *int     `json:"available_rooms"`
}

type DeleteRatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type CreateBlockRequest struct {
	HotelID    *string `json:"hotel_id"`
	RoomTypeID *string `json:"room_type_id"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	BlockType  string  `json:"block_type" binding:"required"`
	Reason     string  `json:"reason"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetUserActiveRequest struct {
	Active bool `json:"active"`
}

type UpsertTranslationRequest struct {
	Locale string `json:"locale" binding:"required"`
	Key    string `json:"key" binding:"required"`
	Value  string `json:"value"`
}
