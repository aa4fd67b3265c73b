package availability

import (
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStayPrice_BasePriceOnly(t *testing.T) {
	base := decimal.NewFromInt(1000)
	nights := datesBetween(day("2026-03-10"), day("2026-03-13"))

	total := stayPrice(base, nil, nights)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.NewFromInt(3000)), "got %s", total)
}

func TestStayPrice_RateOverridesSingleNight(t *testing.T) {
	// 3 nights at base 1000, the middle night overridden to 1400:
	// 1000 + 1400 + 1000.
	base := decimal.NewFromInt(1000)
	rates := []domain.RoomRate{
		{RoomTypeID: "rt1", Date: day("2026-03-11"), Price: decimal.NewFromInt(1400)},
	}
	nights := datesBetween(day("2026-03-10"), day("2026-03-13"))

	total := stayPrice(base, rates, nights)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.NewFromInt(3400)), "got %s", total)
}

func TestStayPrice_RateOutsideStayIgnored(t *testing.T) {
	base := decimal.NewFromInt(1000)
	rates := []domain.RoomRate{
		// checkout date: not a booked night
		{RoomTypeID: "rt1", Date: day("2026-03-13"), Price: decimal.NewFromInt(9999)},
	}
	nights := datesBetween(day("2026-03-12"), day("2026-03-13"))

	total := stayPrice(base, rates, nights)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.NewFromInt(1000)), "got %s", total)
}

func TestStayPrice_ZeroNightsIsNil(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.Nil(t, stayPrice(base, nil, nil))
	assert.Nil(t, stayPrice(base, nil, []string{}))
}

func TestStayPrice_FractionalRates(t *testing.T) {
	base := decimal.RequireFromString("999.99")
	rates := []domain.RoomRate{
		{Date: day("2026-03-10"), Price: decimal.RequireFromString("1250.50")},
	}
	nights := datesBetween(day("2026-03-10"), day("2026-03-12"))

	total := stayPrice(base, rates, nights)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.RequireFromString("2250.49")), "got %s", total)
}

func TestEffectiveCapacity_NoOverrides(t *testing.T) {
	nights := datesBetween(day("2026-03-10"), day("2026-03-13"))
	assert.Equal(t, 5, effectiveCapacity(5, nil, nights))
}

func TestEffectiveCapacity_LowestOverrideWins(t *testing.T) {
	two := 2
	four := 4
	rates := []domain.RoomRate{
		{Date: day("2026-03-10"), Price: decimal.NewFromInt(1000), AvailableRooms: &four},
		{Date: day("2026-03-11"), Price: decimal.NewFromInt(1000), AvailableRooms: &two},
	}
	nights := datesBetween(day("2026-03-10"), day("2026-03-13"))

	assert.Equal(t, 2, effectiveCapacity(5, rates, nights))
}

func TestEffectiveCapacity_OverrideWithoutRoomsKeepsInventory(t *testing.T) {
	rates := []domain.RoomRate{
		{Date: day("2026-03-10"), Price: decimal.NewFromInt(1400)},
	}
	nights := datesBetween(day("2026-03-10"), day("2026-03-11"))

	assert.Equal(t, 5, effectiveCapacity(5, rates, nights))
}

func TestEffectiveCapacity_NeverNegative(t *testing.T) {
	neg := -3
	rates := []domain.RoomRate{
		{Date: day("2026-03-10"), Price: decimal.NewFromInt(1000), AvailableRooms: &neg},
	}
	nights := datesBetween(day("2026-03-10"), day("2026-03-11"))

	assert.Equal(t, 0, effectiveCapacity(5, rates, nights))
}
