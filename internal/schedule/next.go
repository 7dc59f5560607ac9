package schedule

import (
	"fmt"
	"time"
)

type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case CadenceDaily, CadenceWeekly:
		return Cadence(s), nil
	default:
		return "", fmt.Errorf("invalid cadence %q: must be 'daily' or 'weekly'", s)
	}
}

// Next returns the first trigger time strictly after now. Daily runs fire
// every day at the given wall-clock time; weekly runs fire on Sundays.
func Next(c Cadence, at string, now time.Time) time.Time {
	t, err := time.Parse("15:04", at)
	if err != nil {
		t, _ = time.Parse("15:04", "02:00")
	}
	cand := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())

	switch c {
	case CadenceWeekly:
		daysAhead := (int(time.Sunday) - int(now.Weekday()) + 7) % 7
		cand = cand.AddDate(0, 0, daysAhead)
		if !cand.After(now) {
			cand = cand.AddDate(0, 0, 7)
		}
	default:
		if !cand.After(now) {
			cand = cand.AddDate(0, 0, 1)
		}
	}
	return cand
}
