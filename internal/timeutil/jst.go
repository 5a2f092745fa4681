package timeutil

import (
	"time"
)

// JST is the Japan Standard Time location (UTC+9); the planning calendar is a
// Japanese fiscal year starting in April.
var JST *time.Location

func init() {
	var err error
	JST, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		// Fallback: create fixed zone if Asia/Tokyo not available
		JST = time.FixedZone("JST", 9*60*60) // UTC+9
	}
}

// Now returns the current time in JST
func Now() time.Time {
	return time.Now().In(JST)
}

// ToJST converts any time to JST
func ToJST(t time.Time) time.Time {
	return t.In(JST)
}

// MonthStart truncates a time to the first day of its month (UTC date part).
// Entry dates are stored at month granularity.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth parses a yyyy-mm-dd string and truncates it to its month.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return MonthStart(t), nil
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
