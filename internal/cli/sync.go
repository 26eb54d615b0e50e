package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Re-apply stored lockouts whenever the settings file changes",
	Long: `Applies every stored lockout window once, then watches the settings
file and re-applies on each change until interrupted. External calls stay
strictly sequential: changes are drained one at a time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		resync := func() {
			settings, err := a.store.Load()
			if err != nil {
				a.log.Warn().Err(err).Msg("settings unreadable, keeping last applied state")
				return
			}
			if err := a.lockouts.ApplyAll(ctx, settings); err != nil {
				a.log.Error().Err(err).Msg("resync incomplete")
			}
		}

		resync()

		changes, err := a.store.Watch(ctx)
		if err != nil {
			return fmt.Errorf("watch settings: %w", err)
		}
		a.log.Info().Str("path", a.store.Path()).Msg("watching settings for changes")
		fmt.Printf("Watching %s; press Ctrl-C to stop.\n", a.store.Path())

		for {
			select {
			case <-ctx.Done():
				a.log.Info().Msg("sync stopped")
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				a.log.Info().Msg("settings changed, re-applying lockouts")
				resync()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
