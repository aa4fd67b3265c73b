package domain

import "time"

type BlockType string

const (
	BlockMaintenance    BlockType = "maintenance"
	BlockRenovation     BlockType = "renovation"
	BlockSeasonal       BlockType = "seasonal_closure"
	BlockPrivateEvent   BlockType = "private_event"
	BlockOverbooking    BlockType = "overbooking_protection"
	BlockOther          BlockType = "other"
)

func ParseBlockType(s string) (BlockType, bool) {
	switch BlockType(s) {
	case BlockMaintenance, BlockRenovation, BlockSeasonal, BlockPrivateEvent, BlockOverbooking, BlockOther:
		return BlockType(s), true
	}
	return "", false
}

// AvailabilityBlock marks a hotel or a single room type unbookable for an
// inclusive date interval. A nil RoomTypeID with a set HotelID blocks every
// room type of that hotel.
type AvailabilityBlock struct {
	ID         string    `json:"id"`
	HotelID    *string   `json:"hotel_id,omitempty"`
	RoomTypeID *string   `json:"room_type_id,omitempty"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	BlockType  BlockType `json:"block_type"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
