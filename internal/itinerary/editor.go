package itinerary

import (
	"fmt"
	"slices"

	"github.com/wayfarer/trip-planner/internal/domain"
)

// Move takes the activity at fromIndex on fromDay and inserts it at
// *toIndex on toDay, or appends it when toIndex is nil. Day arguments are
// 0-based positions in it. toIndex is interpreted after the removal, so
// moving within one day behaves like a list reorder.
//
// Times of both affected days are recomputed from DayStartHour without the
// daily budget: a manual move may overload a day. it is not modified; the
// edited copy is returned.
func Move(it domain.Itinerary, fromDay, fromIndex, toDay int, toIndex *int) (domain.Itinerary, error) {
	if err := checkDay(it, fromDay, "from day"); err != nil {
		return nil, err
	}
	if err := checkDay(it, toDay, "to day"); err != nil {
		return nil, err
	}
	if err := checkIndex(it[fromDay], fromIndex, "from index"); err != nil {
		return nil, err
	}

	out := it.Clone()
	moved := out[fromDay].Activities[fromIndex]
	out[fromDay].Activities = slices.Delete(out[fromDay].Activities, fromIndex, fromIndex+1)

	dest := out[toDay].Activities
	if toIndex == nil {
		dest = append(dest, moved)
	} else {
		if *toIndex < 0 || *toIndex > len(dest) {
			return nil, fmt.Errorf("%w: to index %d out of range", domain.ErrValidation, *toIndex)
		}
		dest = slices.Insert(dest, *toIndex, moved)
	}
	out[toDay].Activities = dest

	RecalculateTimes(&out[fromDay])
	RecalculateTimes(&out[toDay])
	return out, nil
}

// Remove deletes the activity at index on day (0-based) and recomputes the
// times of the remaining activities on that day only. it is not modified.
func Remove(it domain.Itinerary, day, index int) (domain.Itinerary, error) {
	if err := checkDay(it, day, "day"); err != nil {
		return nil, err
	}
	if err := checkIndex(it[day], index, "index"); err != nil {
		return nil, err
	}

	out := it.Clone()
	out[day].Activities = slices.Delete(out[day].Activities, index, index+1)
	RecalculateTimes(&out[day])
	return out, nil
}

// RecalculateTimes lays out d's activities back to back starting at
// DayStartHour, in their current order.
func RecalculateTimes(d *domain.Day) {
	elapsed := 0.0
	for i := range d.Activities {
		a := &d.Activities[i]
		a.StartTime = ClockTime(elapsed)
		elapsed += a.Duration
		a.EndTime = ClockTime(elapsed)
	}
}

func checkDay(it domain.Itinerary, day int, what string) error {
	if day < 0 || day >= len(it) {
		return fmt.Errorf("%w: %s %d out of range", domain.ErrValidation, what, day)
	}
	return nil
}

func checkIndex(d domain.Day, index int, what string) error {
	if index < 0 || index >= len(d.Activities) {
		return fmt.Errorf("%w: %s %d out of range", domain.ErrValidation, what, index)
	}
	return nil
}
