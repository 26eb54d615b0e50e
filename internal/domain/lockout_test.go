package domain

import (
	"errors"
	"testing"
)

func TestFormatClock12(t *testing.T) {
	cases := map[int]string{
		0:  "12:00AM",
		1:  "1:00AM",
		7:  "7:00AM",
		11: "11:00AM",
		12: "12:00PM",
		13: "1:00PM",
		22: "10:00PM",
		23: "11:00PM",
	}
	for hour, want := range cases {
		if got := FormatClock12(hour); got != want {
			t.Errorf("FormatClock12(%d) = %q, want %q", hour, got, want)
		}
	}

	// All 24 hours map to distinct labels.
	seen := make(map[string]int)
	for h := 0; h < 24; h++ {
		label := FormatClock12(h)
		if prev, dup := seen[label]; dup {
			t.Errorf("hours %d and %d both format as %q", prev, h, label)
		}
		seen[label] = h
	}
}

func TestTranslateWindow_Disabled(t *testing.T) {
	for _, hours := range [][2]int{{22, 7}, {0, 0}, {9, 17}, {5, 5}} {
		spec, err := TranslateWindow(LockoutWindow{Username: "kid", StartHour: hours[0], EndHour: hours[1]})
		if err != nil {
			t.Fatalf("TranslateWindow(%v): %v", hours, err)
		}
		if !spec.Unrestricted {
			t.Errorf("disabled window %v: want unrestricted", hours)
		}
		if spec.TimesValue() != "ALL" {
			t.Errorf("disabled window %v: TimesValue = %q, want ALL", hours, spec.TimesValue())
		}
	}
}

func TestTranslateWindow_FullDay(t *testing.T) {
	for _, h := range []int{0, 7, 12, 23} {
		spec, err := TranslateWindow(LockoutWindow{Enabled: true, StartHour: h, EndHour: h})
		if err != nil {
			t.Fatalf("hour %d: %v", h, err)
		}
		if !spec.FullyRestricted() {
			t.Errorf("start == end == %d: want fully restricted, got %+v", h, spec)
		}
		if spec.TimesValue() != "" {
			t.Errorf("fully restricted TimesValue = %q, want empty", spec.TimesValue())
		}
	}
}

func TestTranslateWindow_CrossesMidnight(t *testing.T) {
	spec, err := TranslateWindow(LockoutWindow{Enabled: true, StartHour: 22, EndHour: 7})
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Ranges) != 1 {
		t.Fatalf("want 1 allowed range, got %d: %+v", len(spec.Ranges), spec.Ranges)
	}
	if spec.Ranges[0] != (HourRange{StartHour: 7, EndHour: 22}) {
		t.Errorf("range = %+v, want 7-22", spec.Ranges[0])
	}
	if got := spec.TimesValue(); got != "M-Su,7:00AM-10:00PM" {
		t.Errorf("TimesValue = %q, want M-Su,7:00AM-10:00PM", got)
	}
}

func TestTranslateWindow_WithinDay(t *testing.T) {
	spec, err := TranslateWindow(LockoutWindow{Enabled: true, StartHour: 9, EndHour: 17})
	if err != nil {
		t.Fatal(err)
	}
	want := []HourRange{{StartHour: 0, EndHour: 9}, {StartHour: 17, EndHour: 0}}
	if len(spec.Ranges) != 2 || spec.Ranges[0] != want[0] || spec.Ranges[1] != want[1] {
		t.Fatalf("ranges = %+v, want %+v", spec.Ranges, want)
	}
	if got := spec.TimesValue(); got != "M-Su,12:00AM-9:00AM;M-Su,5:00PM-12:00AM" {
		t.Errorf("TimesValue = %q", got)
	}
}

func TestTranslateWindow_WithinDayStartingAtMidnight(t *testing.T) {
	spec, err := TranslateWindow(LockoutWindow{Enabled: true, StartHour: 0, EndHour: 6})
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Ranges) != 1 {
		t.Fatalf("want 1 allowed range, got %d: %+v", len(spec.Ranges), spec.Ranges)
	}
	if got := spec.TimesValue(); got != "M-Su,6:00AM-12:00AM" {
		t.Errorf("TimesValue = %q, want M-Su,6:00AM-12:00AM", got)
	}
}

func TestTranslateWindow_OutOfRange(t *testing.T) {
	for _, w := range []LockoutWindow{
		{Enabled: true, StartHour: -1, EndHour: 7},
		{Enabled: true, StartHour: 24, EndHour: 7},
		{Enabled: true, StartHour: 22, EndHour: 99},
	} {
		_, err := TranslateWindow(w)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("TranslateWindow(%+v): want ValidationError, got %v", w, err)
		}
	}
}

// Translating a window and reading back which hours are allowed must
// reproduce exactly the complement of the blocked window [start, end).
func TestTranslateWindow_RoundTrip(t *testing.T) {
	for start := 0; start < 24; start++ {
		for end := 0; end < 24; end++ {
			spec, err := TranslateWindow(LockoutWindow{Enabled: true, StartHour: start, EndHour: end})
			if err != nil {
				t.Fatalf("start=%d end=%d: %v", start, end, err)
			}
			for h := 0; h < 24; h++ {
				blocked := hourBlocked(start, end, h)
				if got := spec.AllowsHour(h); got != !blocked {
					t.Fatalf("start=%d end=%d hour=%d: AllowsHour=%v, blocked=%v (spec %+v)",
						start, end, h, got, blocked, spec)
				}
			}
		}
	}
}

// hourBlocked interprets [start, end) cyclically; start == end blocks the
// whole day.
func hourBlocked(start, end, h int) bool {
	switch {
	case start == end:
		return true
	case start < end:
		return h >= start && h < end
	default:
		return h >= start || h < end
	}
}
