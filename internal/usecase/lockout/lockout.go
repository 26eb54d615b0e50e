// Package lockout applies per-user logon-time restrictions through the
// account tool's /times parameter.
package lockout

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cobalt/screentime/internal/domain"
	"github.com/cobalt/screentime/internal/port"
)

type Service struct {
	Runner port.Runner
	Store  port.Store
	Log    zerolog.Logger

	// Sessions, when set, is used to log off a user immediately after an
	// enabled lockout is applied during a blocked hour.
	Sessions port.SessionControl

	// Timeout bounds each external call; zero means the runner's default.
	Timeout time.Duration

	// Now is the clock used to decide whether the current hour is blocked.
	// Nil means time.Now.
	Now func() time.Time
}

func NewService(runner port.Runner, store port.Store, log zerolog.Logger) *Service {
	return &Service{Runner: runner, Store: store, Log: log}
}

func (s *Service) runOpts() port.RunOptions {
	return port.RunOptions{CaptureOutput: true, Timeout: s.Timeout}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func timesArgs(username string, spec domain.AllowedTimeSpec) []string {
	return []string{"net", "user", username, "/times:" + spec.TimesValue()}
}

// Apply translates the window, pushes it to the account tool and persists
// the intent. A persistence failure is a warning: the account restriction
// is already in effect.
func (s *Service) Apply(ctx context.Context, w domain.LockoutWindow) error {
	return s.apply(ctx, w, true)
}

// Clear disables the user's lockout, keeping the stored hours so a later
// re-enable picks them up. The settings entry persists with enabled=false.
func (s *Service) Clear(ctx context.Context, username string) error {
	w := domain.LockoutWindow{Username: username, StartHour: 22, EndHour: 7}
	if settings, err := s.Store.Load(); err == nil {
		if stored, ok := settings.Lockout(username); ok {
			w = stored
		}
	} else {
		s.Log.Warn().Err(err).Msg("load settings failed, clearing with default hours")
	}
	w.Enabled = false
	return s.apply(ctx, w, true)
}

// ApplyAll re-applies every stored window without writing the settings
// back; it is the resync path used when the settings file changes on disk.
func (s *Service) ApplyAll(ctx context.Context, settings *domain.Settings) error {
	var firstErr error
	for username := range settings.UserLockoutSchedules {
		w, _ := settings.Lockout(username)
		if err := s.apply(ctx, w, false); err != nil {
			s.Log.Error().Err(err).Str("user", username).Msg("resync failed for user")
			if firstErr == nil {
				firstErr = fmt.Errorf("apply lockout for %s: %w", username, err)
			}
		}
	}
	return firstErr
}

func (s *Service) apply(ctx context.Context, w domain.LockoutWindow, persist bool) error {
	if w.Username == "" {
		return &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	spec, err := domain.TranslateWindow(w)
	if err != nil {
		return err
	}

	s.Log.Info().Str("user", w.Username).Bool("enabled", w.Enabled).
		Str("times", spec.TimesValue()).Msg("applying logon times")
	if _, err := s.Runner.Run(ctx, timesArgs(w.Username, spec), s.runOpts()); err != nil {
		return fmt.Errorf("set logon times for %s: %w", w.Username, err)
	}

	if persist {
		s.persist(w)
	}

	if w.Enabled && s.Sessions != nil && !spec.AllowsHour(s.now().Hour()) {
		if err := s.Sessions.LogoffUser(w.Username); err != nil {
			s.Log.Warn().Err(err).Str("user", w.Username).Msg("immediate logoff failed")
		}
	}
	return nil
}

func (s *Service) persist(w domain.LockoutWindow) {
	settings, err := s.Store.Load()
	if err != nil {
		s.Log.Warn().Err(err).Msg("load settings failed, lockout not persisted")
		return
	}
	settings.SetLockout(w)
	if err := s.Store.Save(settings); err != nil {
		s.Log.Warn().Err(err).Msg("save settings failed, lockout not persisted")
	}
}
