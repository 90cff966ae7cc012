// Package countdown computes the time remaining until the wedding for the
// flip-digit widget.
package countdown

import "time"

type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Remaining splits the interval between now and target into whole days,
// hours, minutes and seconds. Once target has passed it returns all zeros
// and isPast = true.
func Remaining(target, now time.Time) (TimeRemaining, bool) {
	diff := target.Sub(now)
	if diff <= 0 {
		return TimeRemaining{}, true
	}

	return TimeRemaining{
		Days:    int(diff.Hours()) / 24,
		Hours:   int(diff.Hours()) % 24,
		Minutes: int(diff.Minutes()) % 60,
		Seconds: int(diff.Seconds()) % 60,
	}, false
}

// Digits returns the display digits of one unit value, zero-padded to at
// least two, for the flip animation which renders each digit separately.
func Digits(value int) []int {
	if value < 0 {
		value = 0
	}
	digits := []int{}
	for value > 0 {
		digits = append([]int{value % 10}, digits...)
		value /= 10
	}
	for len(digits) < 2 {
		digits = append([]int{0}, digits...)
	}
	return digits
}

// Changed reports which of the four units differ between two ticks; the
// widget only animates digits that changed.
func Changed(prev, cur TimeRemaining) [4]bool {
	return [4]bool{
		prev.Days != cur.Days,
		prev.Hours != cur.Hours,
		prev.Minutes != cur.Minutes,
		prev.Seconds != cur.Seconds,
	}
}
