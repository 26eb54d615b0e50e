// Package tasks schedules the daily restart and its advance notification
// as a pair of OS scheduler tasks. The pair is all-or-nothing: the restart
// task never outlives a failed notification task.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cobalt/screentime/internal/domain"
	"github.com/cobalt/screentime/internal/port"
)

type Service struct {
	Runner port.Runner
	Store  port.Store
	Log    zerolog.Logger

	// Timeout bounds each external call; zero means the runner's default.
	Timeout time.Duration

	// NotFoundPhrases overrides the delete-output classification set.
	NotFoundPhrases []string
}

func NewService(runner port.Runner, store port.Store, log zerolog.Logger) *Service {
	return &Service{Runner: runner, Store: store, Log: log}
}

// Status describes the currently scheduled restart task, if any.
type Status struct {
	Scheduled bool
	NextRun   domain.TimeOfDay
	HasTime   bool
}

func (s *Service) runOpts() port.RunOptions {
	return port.RunOptions{CaptureOutput: true, Timeout: s.Timeout}
}

func (s *Service) notFoundPhrases() []string {
	if s.NotFoundPhrases != nil {
		return s.NotFoundPhrases
	}
	return defaultNotFoundPhrases
}

// Apply persists the notification message, replaces any prior task pair and
// creates the restart task plus its one-minute-early notification. If the
// notification task cannot be created the restart task is rolled back.
func (s *Service) Apply(ctx context.Context, schedule domain.RestartSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	s.persistMessage(schedule.NotificationMessage)

	// Replace rather than stack: both tasks carry fixed names.
	if err := s.deleteTask(ctx, RestartTaskName); err != nil {
		s.Log.Warn().Err(err).Str("task", RestartTaskName).Msg("pre-delete failed, continuing")
	}
	if err := s.deleteTask(ctx, NotificationTaskName); err != nil {
		s.Log.Warn().Err(err).Str("task", NotificationTaskName).Msg("pre-delete failed, continuing")
	}

	s.Log.Info().Str("at", schedule.At.String()).Msg("creating restart task")
	if _, err := s.Runner.Run(ctx, createRestartArgs(schedule.At), s.runOpts()); err != nil {
		return fmt.Errorf("create restart task: %w", err)
	}

	notifyAt := schedule.NotificationAt()
	s.Log.Info().Str("at", notifyAt.String()).Msg("creating notification task")
	if _, err := s.Runner.Run(ctx, createNotificationArgs(notifyAt, schedule.NotificationMessage), s.runOpts()); err != nil {
		s.Log.Error().Err(err).Msg("notification task failed, rolling back restart task")
		if delErr := s.deleteTask(ctx, RestartTaskName); delErr != nil {
			return errors.Join(fmt.Errorf("create notification task: %w", err),
				fmt.Errorf("rollback restart task: %w", delErr))
		}
		return fmt.Errorf("create notification task: %w", err)
	}

	s.Log.Info().Str("restart", schedule.At.String()).Str("notification", notifyAt.String()).
		Msg("restart task pair created")
	return nil
}

// Cancel removes both tasks. Tasks that are already absent count as removed.
func (s *Service) Cancel(ctx context.Context) error {
	var errs []error
	if err := s.deleteTask(ctx, RestartTaskName); err != nil {
		errs = append(errs, fmt.Errorf("delete restart task: %w", err))
	}
	if err := s.deleteTask(ctx, NotificationTaskName); err != nil {
		errs = append(errs, fmt.Errorf("delete notification task: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.Log.Info().Msg("restart task pair removed")
	return nil
}

// CurrentStatus queries the restart task. An absent task is a normal state,
// not an error; any other query failure is reported to the caller.
func (s *Service) CurrentStatus(ctx context.Context) (Status, error) {
	out, err := s.Runner.Run(ctx, queryArgs(RestartTaskName), s.runOpts())
	if err != nil {
		var cmdErr *port.CommandError
		if errors.As(err, &cmdErr) && IsNotFoundOutput(cmdErr.Output, s.notFoundPhrases()) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("query restart task: %w", err)
	}
	if !strings.Contains(out, RestartTaskName) {
		return Status{}, nil
	}

	status := Status{Scheduled: true}
	if at, ok := parseNextRunTime(out); ok {
		status.NextRun = at
		status.HasTime = true
	}
	return status, nil
}

// deleteTask removes a task, treating "already absent" output as success.
func (s *Service) deleteTask(ctx context.Context, taskName string) error {
	_, err := s.Runner.Run(ctx, deleteArgs(taskName), s.runOpts())
	if err == nil {
		return nil
	}
	var cmdErr *port.CommandError
	if errors.As(err, &cmdErr) && IsNotFoundOutput(cmdErr.Output, s.notFoundPhrases()) {
		s.Log.Debug().Str("task", taskName).Msg("task already absent")
		return nil
	}
	return err
}

// persistMessage saves the notification text. A persistence failure keeps
// the in-memory value and is reported as a warning only.
func (s *Service) persistMessage(message string) {
	settings, err := s.Store.Load()
	if err != nil {
		s.Log.Warn().Err(err).Msg("load settings failed, message not persisted")
		return
	}
	settings.NotificationMessage = message
	if err := s.Store.Save(settings); err != nil {
		s.Log.Warn().Err(err).Msg("save settings failed, message not persisted")
	}
}

// parseNextRunTime pulls HH:MM out of the "Next Run Time:" line of the
// LIST-format query output.
func parseNextRunTime(output string) (domain.TimeOfDay, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Next Run Time:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return domain.TimeOfDay{}, false
		}
		// Last field is the clock part of the timestamp; keep HH:MM.
		clock := fields[len(fields)-1]
		parts := strings.Split(clock, ":")
		if len(parts) < 2 {
			return domain.TimeOfDay{}, false
		}
		at, err := domain.ParseTimeOfDay(parts[0] + ":" + parts[1])
		if err != nil {
			return domain.TimeOfDay{}, false
		}
		return at, true
	}
	return domain.TimeOfDay{}, false
}
