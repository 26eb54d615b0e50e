package domain

import (
	"fmt"
	"strconv"
)

// DefaultNotificationMessage is shown one minute before a scheduled restart.
const DefaultNotificationMessage = "This computer will restart in one minute.\nSave any open files to avoid losing work."

// UserLockout is the persisted form of one account's lockout window.
// Hours are stored as zero-padded strings and minutes are always "00";
// this matches the on-disk document shape consumed by older installs.
type UserLockout struct {
	Enabled     bool   `json:"enabled"`
	LockStartHH string `json:"lock_start_hh"`
	LockStartMM string `json:"lock_start_mm"`
	LockEndHH   string `json:"lock_end_hh"`
	LockEndMM   string `json:"lock_end_mm"`
}

// Settings is the whole persisted configuration document. One restart
// schedule per document, one lockout entry per username.
type Settings struct {
	Revision             string                 `json:"revision,omitempty"`
	NotificationMessage  string                 `json:"notification_message"`
	UserLockoutSchedules map[string]UserLockout `json:"user_lockout_schedules"`
}

// DefaultSettings returns the document used when nothing is persisted yet.
func DefaultSettings() *Settings {
	return &Settings{
		NotificationMessage:  DefaultNotificationMessage,
		UserLockoutSchedules: make(map[string]UserLockout),
	}
}

// Normalize fills in defaults for fields missing from an older or partial
// document. Loading never fails on a sparse file.
func (s *Settings) Normalize() {
	if s.NotificationMessage == "" {
		s.NotificationMessage = DefaultNotificationMessage
	}
	if s.UserLockoutSchedules == nil {
		s.UserLockoutSchedules = make(map[string]UserLockout)
	}
}

// Lockout returns the stored window for a username. ok is false when the
// user has no entry; the returned window then carries the defaults.
func (s *Settings) Lockout(username string) (LockoutWindow, bool) {
	ul, ok := s.UserLockoutSchedules[username]
	if !ok {
		return LockoutWindow{Username: username, StartHour: 22, EndHour: 7}, false
	}
	start, err := strconv.Atoi(ul.LockStartHH)
	if err != nil {
		start = 22
	}
	end, err := strconv.Atoi(ul.LockEndHH)
	if err != nil {
		end = 7
	}
	return LockoutWindow{
		Username:  username,
		Enabled:   ul.Enabled,
		StartHour: start,
		EndHour:   end,
	}, true
}

// SetLockout stores a window under its username, overwriting any prior
// entry. Entries are never removed; clearing a lockout stores it disabled.
func (s *Settings) SetLockout(w LockoutWindow) {
	if s.UserLockoutSchedules == nil {
		s.UserLockoutSchedules = make(map[string]UserLockout)
	}
	s.UserLockoutSchedules[w.Username] = UserLockout{
		Enabled:     w.Enabled,
		LockStartHH: fmt.Sprintf("%02d", w.StartHour),
		LockStartMM: "00",
		LockEndHH:   fmt.Sprintf("%02d", w.EndHour),
		LockEndMM:   "00",
	}
}
