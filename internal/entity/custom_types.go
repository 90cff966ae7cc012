package entity

import (
	"fmt"
	"time"
)

// CustomTime marshals wedding dates in the minute-precision layout the
// frontend expects ("2026-04-18T13:00").
type CustomTime struct {
	time.Time
}

const customTimeLayout = "2006-01-02T15:04"

func (ct *CustomTime) UnmarshalJSON(b []byte) error {
	s := string(b[1 : len(b)-1]) // Remove quotes
	t, err := time.Parse(customTimeLayout, s)
	if err != nil {
		return err
	}
	ct.Time = t
	return nil
}

func (ct CustomTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ct.Format(customTimeLayout) + `"`), nil
}

// FormatCreatedAt renders a submission timestamp the way the admin table
// shows it: day.month. hour:minute, cs-CZ style.
func FormatCreatedAt(t time.Time) string {
	return fmt.Sprintf("%d.%d. %02d:%02d", t.Day(), int(t.Month()), t.Hour(), t.Minute())
}
