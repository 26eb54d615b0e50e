package domain

import "testing"

func TestSettingsLockoutRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.SetLockout(LockoutWindow{Username: "alice", Enabled: true, StartHour: 22, EndHour: 7})

	ul := s.UserLockoutSchedules["alice"]
	if ul.LockStartHH != "22" || ul.LockEndHH != "07" {
		t.Errorf("stored hours = %q-%q, want 22-07", ul.LockStartHH, ul.LockEndHH)
	}
	if ul.LockStartMM != "00" || ul.LockEndMM != "00" {
		t.Errorf("minutes must be pinned to 00, got %q/%q", ul.LockStartMM, ul.LockEndMM)
	}

	w, ok := s.Lockout("alice")
	if !ok {
		t.Fatal("want stored entry")
	}
	if !w.Enabled || w.StartHour != 22 || w.EndHour != 7 {
		t.Errorf("got %+v", w)
	}
}

func TestSettingsLockoutDefaults(t *testing.T) {
	s := DefaultSettings()
	w, ok := s.Lockout("nobody")
	if ok {
		t.Fatal("want ok=false for unknown user")
	}
	if w.Enabled || w.StartHour != 22 || w.EndHour != 7 {
		t.Errorf("default window = %+v", w)
	}
}

func TestSettingsNormalize(t *testing.T) {
	var s Settings
	s.Normalize()
	if s.NotificationMessage != DefaultNotificationMessage {
		t.Errorf("message = %q", s.NotificationMessage)
	}
	if s.UserLockoutSchedules == nil {
		t.Error("schedules map not initialized")
	}
}
