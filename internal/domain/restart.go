package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" or "H:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", s)}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", s)}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", s)}
	}
	return NewTimeOfDay(hour, minute)
}

// NewTimeOfDay validates the hour and minute components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if err := ValidateHour(hour); err != nil {
		return TimeOfDay{}, err
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, &ValidationError{Field: "minute", Reason: fmt.Sprintf("must be 0-59, got %d", minute)}
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String renders "HH:MM", the format the task scheduler's /st flag expects.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinusMinute returns the time one minute earlier, wrapping across midnight.
func (t TimeOfDay) MinusMinute() TimeOfDay {
	minute := t.Minute - 1
	hour := t.Hour
	if minute < 0 {
		minute = 59
		hour--
		if hour < 0 {
			hour = 23
		}
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// RestartSchedule is the user's daily restart intent.
type RestartSchedule struct {
	At                  TimeOfDay
	NotificationMessage string
}

// Validate checks the schedule before any task is touched.
func (r RestartSchedule) Validate() error {
	if _, err := NewTimeOfDay(r.At.Hour, r.At.Minute); err != nil {
		return err
	}
	if strings.TrimSpace(r.NotificationMessage) == "" {
		return &ValidationError{Field: "notification message", Reason: "must not be empty"}
	}
	return nil
}

// NotificationAt is when the broadcast fires: one minute before the restart.
func (r RestartSchedule) NotificationAt() TimeOfDay {
	return r.At.MinusMinute()
}
