package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// noPrice marks a hotel that had no bookable room for the range, so the
// negative result is cached too.
const noPrice = "none"

// PriceCache memoizes the lowest bookable stay price per hotel and date
// range. A nil *PriceCache is valid and behaves as a pass-through.
type PriceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *PriceCache {
	return &PriceCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func key(hotelID, checkIn, checkOut string) string {
	return fmt.Sprintf("lowest_price:%s:%s:%s", hotelID, checkIn, checkOut)
}

// GetLowestPrice returns (price, found). A found entry may still carry a nil
// price when no room was bookable.
func (c *PriceCache) GetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string) (*decimal.Decimal, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key(hotelID, checkIn, checkOut)).Result()
	if err != nil {
		return nil, false
	}
	if val == noPrice {
		return nil, true
	}

	d, err := decimal.NewFromString(val)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func (c *PriceCache) SetLowestPrice(ctx context.Context, hotelID, checkIn, checkOut string, price *decimal.Decimal) {
	if c == nil {
		return
	}

	val := noPrice
	if price != nil {
		val = price.String()
	}
	// best effort, a failed write just means a recompute next time
	_ = c.rdb.Set(ctx, key(hotelID, checkIn, checkOut), val, c.ttl).Err()
}

func (c *PriceCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
