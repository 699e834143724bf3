package domain

// Activity is a single thing to do at a destination, as listed in the
// catalog. Duration is in hours and may be fractional (e.g. 1.5).
type Activity struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Duration    float64 `json:"duration" yaml:"duration"`
	BestTime    string  `json:"bestTime" yaml:"bestTime"`
}

// ScheduledActivity is an Activity placed on a day, with local clock times
// formatted as "HH:MM".
type ScheduledActivity struct {
	Activity
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Day is one calendar day of an itinerary. Number is 1-based.
type Day struct {
	Number     int                 `json:"day"`
	Date       string              `json:"date"`
	Activities []ScheduledActivity `json:"activities"`
}

// Itinerary is the day-by-day schedule of a trip, one Day per calendar day.
type Itinerary []Day

// Clone returns a deep copy of the itinerary. A nil itinerary stays nil and
// an empty one stays empty (non-nil), preserving Trip.HasItinerary.
func (it Itinerary) Clone() Itinerary {
	if it == nil {
		return nil
	}
	out := make(Itinerary, len(it))
	for i, d := range it {
		out[i] = d
		if d.Activities != nil {
			out[i].Activities = make([]ScheduledActivity, len(d.Activities))
			copy(out[i].Activities, d.Activities)
		}
	}
	return out
}

// TotalDuration returns the sum of every scheduled activity's duration.
func (it Itinerary) TotalDuration() float64 {
	var total float64
	for _, d := range it {
		for _, a := range d.Activities {
			total += a.Duration
		}
	}
	return total
}
