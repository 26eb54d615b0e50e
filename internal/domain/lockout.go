package domain

import (
	"fmt"
	"strings"
)

// EveryDay is the only day range the lockout schedule exposes: windows
// apply uniformly to the whole week.
const EveryDay = "M-Su"

// LockoutWindow is the blocked-hours window for one local account.
// The window [StartHour, EndHour) is interpreted cyclically over 24 hours:
// EndHour < StartHour means the blocked window crosses midnight, and
// EndHour == StartHour means the whole day is blocked.
type LockoutWindow struct {
	Username  string
	Enabled   bool
	StartHour int // top of the hour lockout begins, 0-23
	EndHour   int // top of the hour lockout ends, 0-23
}

// HourRange is one allowed logon span within a day. An EndHour of 0 means
// midnight at the end of the day.
type HourRange struct {
	StartHour int
	EndHour   int
}

// AllowedTimeSpec is the translated complement of a LockoutWindow: when
// logon is permitted. Unrestricted means all hours allowed; a restricted
// spec with zero ranges means no hour is allowed.
type AllowedTimeSpec struct {
	Unrestricted bool
	Ranges       []HourRange
}

// FullyRestricted reports whether the spec permits no logon at all.
func (s AllowedTimeSpec) FullyRestricted() bool {
	return !s.Unrestricted && len(s.Ranges) == 0
}

// ValidateHour checks an hour-of-day value.
func ValidateHour(h int) error {
	if h < 0 || h > 23 {
		return &ValidationError{Field: "hour", Reason: fmt.Sprintf("must be 0-23, got %d", h)}
	}
	return nil
}

// TranslateWindow converts a blocked-hours window into the allowed-logon
// spec that is its exact complement. It is pure: no I/O, no clock.
func TranslateWindow(w LockoutWindow) (AllowedTimeSpec, error) {
	if err := ValidateHour(w.StartHour); err != nil {
		return AllowedTimeSpec{}, fmt.Errorf("lock start: %w", err)
	}
	if err := ValidateHour(w.EndHour); err != nil {
		return AllowedTimeSpec{}, fmt.Errorf("lock end: %w", err)
	}

	if !w.Enabled {
		return AllowedTimeSpec{Unrestricted: true}, nil
	}

	switch {
	case w.StartHour == w.EndHour:
		// Blocked window spans the full 24 hours: no allowed ranges.
		return AllowedTimeSpec{}, nil

	case w.EndHour < w.StartHour:
		// Blocked window crosses midnight; the complement is a single
		// same-day span.
		return AllowedTimeSpec{Ranges: []HourRange{
			{StartHour: w.EndHour, EndHour: w.StartHour},
		}}, nil

	default:
		// Blocked window sits inside one day; the complement wraps around
		// midnight and needs up to two spans.
		if w.StartHour == 0 {
			return AllowedTimeSpec{Ranges: []HourRange{
				{StartHour: w.EndHour, EndHour: 0},
			}}, nil
		}
		return AllowedTimeSpec{Ranges: []HourRange{
			{StartHour: 0, EndHour: w.StartHour},
			{StartHour: w.EndHour, EndHour: 0},
		}}, nil
	}
}

// FormatClock12 renders an hour of day as the account tool's 12-hour label:
// no leading zero, minutes fixed at :00, AM/PM suffix. 0 -> "12:00AM",
// 12 -> "12:00PM", 22 -> "10:00PM".
func FormatClock12(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour > 12:
		h = hour - 12
	}
	return fmt.Sprintf("%d:00%s", h, suffix)
}

// TimesValue renders the spec as the value of the account tool's /times
// parameter: "ALL" for unrestricted, ranges joined with ";" otherwise.
// A fully restricted spec renders as the empty string, which the tool
// accepts as "never allowed".
func (s AllowedTimeSpec) TimesValue() string {
	if s.Unrestricted {
		return "ALL"
	}
	parts := make([]string, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		parts = append(parts, fmt.Sprintf("%s,%s-%s", EveryDay, FormatClock12(r.StartHour), FormatClock12(r.EndHour)))
	}
	return strings.Join(parts, ";")
}

// AllowsHour reports whether logon is permitted during [hour, hour+1).
func (s AllowedTimeSpec) AllowsHour(hour int) bool {
	if s.Unrestricted {
		return true
	}
	for _, r := range s.Ranges {
		end := r.EndHour
		if end == 0 {
			end = 24
		}
		if hour >= r.StartHour && hour < end {
			return true
		}
	}
	return false
}
