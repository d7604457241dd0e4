package schedule

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	var c ClockTime
	if _, err := fmt.Sscanf(s, "%d:%d", &c.Hour, &c.Minute); err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	return c, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) minuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// Window is the daylight window both jobs are restricted to. A job whose
// cron entry fires outside the window is skipped, not rescheduled. Bounds
// are inclusive.
type Window struct {
	Start ClockTime
	End   ClockTime
}

// DefaultWindow covers the daylight hours solar generation is worth
// reporting on.
var DefaultWindow = Window{
	Start: ClockTime{Hour: 6},
	End:   ClockTime{Hour: 20},
}

// Contains reports whether t's time of day falls inside the window. An end
// before the start means the window wraps past midnight.
func (w Window) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	start, end := w.Start.minuteOfDay(), w.End.minuteOfDay()
	if start <= end {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}
