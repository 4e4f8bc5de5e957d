package handlers

import (
	"time"
)

// parseDayIn reads a YYYY-MM-DD query value as midnight in loc.
func parseDayIn(loc *time.Location, dateStr string) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
