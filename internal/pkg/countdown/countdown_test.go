package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 30, 15, 0, time.UTC)

	tests := []struct {
		name     string
		target   time.Time
		expected TimeRemaining
		isPast   bool
	}{
		{
			name:     "full breakdown",
			target:   time.Date(2026, 4, 18, 13, 0, 0, 0, time.UTC),
			expected: TimeRemaining{Days: 8, Hours: 0, Minutes: 29, Seconds: 45},
		},
		{
			name:     "under a day",
			target:   now.Add(3*time.Hour + 5*time.Minute),
			expected: TimeRemaining{Hours: 3, Minutes: 5},
		},
		{
			name:   "past target is all zeros",
			target: now.Add(-time.Hour),
			isPast: true,
		},
		{
			name:   "exact moment counts as past",
			target: now,
			isPast: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, isPast := Remaining(tt.target, now)
			assert.Equal(t, tt.expected, remaining)
			assert.Equal(t, tt.isPast, isPast)
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{0, 0}, Digits(0))
	assert.Equal(t, []int{0, 7}, Digits(7))
	assert.Equal(t, []int{4, 2}, Digits(42))
	assert.Equal(t, []int{1, 2, 3}, Digits(123))
	assert.Equal(t, []int{0, 0}, Digits(-5))
}

func TestChanged(t *testing.T) {
	prev := TimeRemaining{Days: 8, Hours: 0, Minutes: 29, Seconds: 45}
	cur := TimeRemaining{Days: 8, Hours: 0, Minutes: 29, Seconds: 44}

	assert.Equal(t, [4]bool{false, false, false, true}, Changed(prev, cur))
}
