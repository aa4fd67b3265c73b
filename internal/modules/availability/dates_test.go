package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15-03-2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDatesBetween_ExcludesCheckout(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	nights := datesBetween(start, end)
	assert.Equal(t, []string{"2026-03-10", "2026-03-11", "2026-03-12"}, nights)
}

func TestDatesBetween_SingleNight(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	nights := datesBetween(start, start.AddDate(0, 0, 1))
	assert.Equal(t, []string{"2026-03-10"}, nights)
}

func TestDatesBetween_ZeroOrNegativeRange(t *testing.T) {
	d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, datesBetween(d, d))
	assert.Empty(t, datesBetween(d, d.AddDate(0, 0, -2)))
}

func TestDatesBetween_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	nights := datesBetween(start, end)
	assert.Equal(t, []string{"2026-01-30", "2026-01-31", "2026-02-01"}, nights)
}
