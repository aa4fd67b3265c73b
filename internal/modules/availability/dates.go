package availability

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// datesBetween enumerates every night of a stay: the dates from start up to
// but excluding end, ascending, as YYYY-MM-DD strings. Night N covers the
// stay from date N to date N+1, so the checkout date is never included. An
// end on or before start yields an empty slice, which callers read as "no
// valid stay".
func datesBetween(start, end time.Time) []string {
	out := []string{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dateLayout))
	}
	return out
}
