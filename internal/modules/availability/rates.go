package availability

import (
	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
)

// stayPrice totals the price of a stay: for every night, the rate row for
// that exact date when one exists, else the base price. A zero-night stay
// returns nil, which is distinct from a stay that costs 0.
func stayPrice(basePrice decimal.Decimal, rates []domain.RoomRate, nights []string) *decimal.Decimal {
	if len(nights) == 0 {
		return nil
	}

	byDate := make(map[string]domain.RoomRate, len(rates))
	for _, r := range rates {
		byDate[r.Date.Format(dateLayout)] = r
	}

	total := decimal.Zero
	for _, night := range nights {
		if r, ok := byDate[night]; ok {
			total = total.Add(r.Price)
		} else {
			total = total.Add(basePrice)
		}
	}
	return &total
}

// effectiveCapacity caps the room type's inventory by the lowest per-date
// room-count override among the nights of the stay. Nights without an
// override leave the ceiling at the static inventory.
func effectiveCapacity(totalRooms int, rates []domain.RoomRate, nights []string) int {
	byDate := make(map[string]domain.RoomRate, len(rates))
	for _, r := range rates {
		byDate[r.Date.Format(dateLayout)] = r
	}

	capacity := totalRooms
	for _, night := range nights {
		r, ok := byDate[night]
		if !ok || r.AvailableRooms == nil {
			continue
		}
		if *r.AvailableRooms < capacity {
			capacity = *r.AvailableRooms
		}
	}
	if capacity < 0 {
		return 0
	}
	return capacity
}
