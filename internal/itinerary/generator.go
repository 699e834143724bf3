// Package itinerary turns a flat list of selected activities into a
// day-by-day schedule and implements the manual edit operations that share
// its time model.
//
// Generation is a greedy first-fit packer: activities are sorted, then
// placed left to right into days under an 8 hour budget. It never
// backtracks and never balances load, and the last day absorbs whatever
// does not fit elsewhere.
package itinerary

import (
	"cmp"
	"slices"
	"time"

	"github.com/wayfarer/trip-planner/internal/domain"
)

const (
	// DayStartHour is the local clock hour the first activity of a day starts at.
	DayStartHour = 9

	// MaxDailyHours is the per-day time budget used when packing.
	MaxDailyHours = 8.0
)

// Generate distributes activities across the days from start to end
// (inclusive) and returns the resulting itinerary.
//
// With no activities it returns an empty, non-nil itinerary with zero days.
// Otherwise every day of the range is present, even days that received
// nothing. Input is not modified.
func Generate(start, end time.Time, activities []domain.Activity) domain.Itinerary {
	if len(activities) == 0 {
		return domain.Itinerary{}
	}

	totalDays := domain.DaySpan(start, end)
	if totalDays < 1 {
		return domain.Itinerary{}
	}

	it := emptyDays(domain.TruncateDate(start), totalDays)
	lastDay := totalDays - 1

	currentDay := 0
	dailyTime := 0.0

	for _, a := range SortActivities(activities) {
		if dailyTime+a.Duration > MaxDailyHours && currentDay < lastDay {
			currentDay++
			dailyTime = 0
		}

		it[currentDay].Activities = append(it[currentDay].Activities, schedule(a, dailyTime))
		dailyTime += a.Duration

		// Close the day once the budget is used up. This check is separate
		// from the pre-placement one and both must stay.
		if dailyTime >= MaxDailyHours && currentDay < lastDay {
			currentDay++
			dailyTime = 0
		}
	}

	return it
}

// SortActivities returns a copy of activities ordered by ascending duration,
// with equal durations ordered by category. The sort is stable, so equal
// keys keep their input order.
func SortActivities(activities []domain.Activity) []domain.Activity {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b domain.Activity) int {
		if c := cmp.Compare(a.Duration, b.Duration); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return sorted
}

func emptyDays(first time.Time, n int) domain.Itinerary {
	it := make(domain.Itinerary, n)
	for i := range it {
		it[i] = domain.Day{
			Number:     i + 1,
			Date:       first.AddDate(0, 0, i).Format(domain.DateLayout),
			Activities: []domain.ScheduledActivity{},
		}
	}
	return it
}

// schedule places a at offset hours after the start of the day.
func schedule(a domain.Activity, offset float64) domain.ScheduledActivity {
	return domain.ScheduledActivity{
		Activity:  a,
		StartTime: ClockTime(offset),
		EndTime:   ClockTime(offset + a.Duration),
	}
}
