// Package cli wires the command tree: configuration, logging and the
// elevation bootstrap happen once in the root pre-run, then each command
// drives the task and lockout services.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cobalt/screentime/internal/adapter/elevate"
	"github.com/cobalt/screentime/internal/adapter/jsonfile"
	"github.com/cobalt/screentime/internal/adapter/winexec"
	"github.com/cobalt/screentime/internal/adapter/winsession"
	"github.com/cobalt/screentime/internal/config"
	"github.com/cobalt/screentime/internal/logging"
	"github.com/cobalt/screentime/internal/usecase/lockout"
	"github.com/cobalt/screentime/internal/usecase/tasks"
)

var (
	flagConfig    string
	flagConsole   bool
	flagNoElevate bool
)

// app holds everything the commands share, built once per invocation.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	logClose io.Closer
	store    *jsonfile.Store
	tasks    *tasks.Service
	lockouts *lockout.Service
}

var a app

var rootCmd = &cobra.Command{
	Use:   "screentime",
	Short: "Schedule daily restarts and per-user logon lockouts on a Windows host",
	Long: `screentime drives the Windows task scheduler and local account tools:
it schedules a forced daily restart (with a one-minute-early broadcast
notification) and restricts when named local accounts may log on.

It must run elevated; when started without administrator privileges it
relaunches itself through the UAC prompt and exits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return a.bootstrap()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to screentime.yaml (default: next to the executable)")
	rootCmd.PersistentFlags().BoolVar(&flagConsole, "console", true, "mirror log output to the console")
	rootCmd.PersistentFlags().BoolVar(&flagNoElevate, "no-elevate", false, "fail instead of relaunching when not elevated")
}

func (a *app) bootstrap() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	baseDir := filepath.Dir(exe)

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = filepath.Join(baseDir, config.FileName)
	}
	cfg, err := config.Load(cfgPath, baseDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closer, err := logging.Open(logging.Config{
		Path:    cfg.LogPath,
		Level:   cfg.LogLevel,
		Console: flagConsole,
	})
	if err != nil {
		// The one startup failure that terminates the process non-zero.
		return fmt.Errorf("initialize logging at %s: %w", cfg.LogPath, err)
	}
	a.log = log
	a.logClose = closer

	if !elevate.IsElevated() {
		if flagNoElevate {
			return fmt.Errorf("administrator privileges required")
		}
		log.Warn().Msg("not elevated, relaunching with administrator privileges")
		if err := elevate.Relaunch(); err != nil {
			return fmt.Errorf("relaunch elevated: %w", err)
		}
		a.close()
		os.Exit(0)
	}

	runner := winexec.New(log)
	a.store = jsonfile.New(cfg.SettingsPath)
	a.tasks = &tasks.Service{Runner: runner, Store: a.store, Log: log, Timeout: cfg.Timeout()}
	a.lockouts = &lockout.Service{
		Runner:   runner,
		Store:    a.store,
		Log:      log,
		Sessions: winsession.New(log),
		Timeout:  cfg.Timeout(),
	}

	log.Info().Str("settings", cfg.SettingsPath).Msg("application starting (elevated)")
	return nil
}

func (a *app) close() {
	if a.logClose != nil {
		a.logClose.Close()
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	defer a.close()
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
