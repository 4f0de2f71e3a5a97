package handlers

import (
	"time"

	"github.com/nexthora/booking-api/internal/timeutil"
	"github.com/nexthora/booking-api/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

func parseHM(hm string) (time.Time, error) {
	return timeutil.ParseHM(hm)
}
