package itinerary

import (
	"fmt"
	"math"
)

// ClockTime formats the local time that is offset hours after DayStartHour
// as "HH:MM". Fractional hours become minutes (0.5 -> 30), rounded to the
// nearest whole minute. Hours are not wrapped at midnight: an overloaded
// day can produce "25:30".
func ClockTime(offset float64) string {
	total := int(math.Round((DayStartHour + offset) * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
