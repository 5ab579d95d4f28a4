package utils

import (
	"time"
)

var appLoc *time.Location

func init() {
	var err error
	appLoc, err = time.LoadLocation("Africa/Addis_Ababa")
	if err != nil {
		// Fallback to UTC if timezone data is missing
		// In production docker, ensure tzdata is installed
		appLoc = time.UTC
	}
}

// SetLocation overrides the application timezone. Called once at startup
// from config; a bad name keeps the current location.
func SetLocation(name string) {
	if loc, err := time.LoadLocation(name); err == nil {
		appLoc = loc
	}
}

// GetLocation returns the application *time.Location
func GetLocation() *time.Location {
	return appLoc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLoc)
}

// StartOfDay returns 00:00:00 of t in the given location
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekBounds returns the Monday 00:00:00 and the following Monday 00:00:00
// of the ISO week containing t, in the given location.
func WeekBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	day := StartOfDay(t, loc)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 7)
	return start, end
}

// MonthBounds returns the first day 00:00:00 of the given month and the
// first day of the following month, in the given location.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end
}
