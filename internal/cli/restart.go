package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cobalt/screentime/internal/domain"
)

var (
	flagRestartAt      string
	flagRestartMessage string
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Manage the daily restart task pair",
}

var restartSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Schedule the daily restart and its advance notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := domain.ParseTimeOfDay(flagRestartAt)
		if err != nil {
			return err
		}

		message := flagRestartMessage
		if message == "" {
			settings, err := a.store.Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			message = settings.NotificationMessage
		}

		schedule := domain.RestartSchedule{At: at, NotificationMessage: message}
		if err := a.tasks.Apply(cmd.Context(), schedule); err != nil {
			return err
		}
		fmt.Printf("Daily restart scheduled for %s; notification at %s.\n",
			schedule.At, schedule.NotificationAt())
		return nil
	},
}

var restartCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Remove the restart and notification tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.tasks.Cancel(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Restart and notification tasks removed.")
		return nil
	},
}

var restartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a daily restart is scheduled",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := a.tasks.CurrentStatus(cmd.Context())
		if err != nil {
			return err
		}
		switch {
		case !status.Scheduled:
			fmt.Println("No daily restart is scheduled.")
		case status.HasTime:
			fmt.Printf("Daily restart scheduled; next run at %s.\n", status.NextRun)
		default:
			fmt.Println("Daily restart scheduled (next run time unavailable).")
		}
		return nil
	},
}

func init() {
	restartSetCmd.Flags().StringVar(&flagRestartAt, "at", "02:00", "restart time of day, HH:MM")
	restartSetCmd.Flags().StringVar(&flagRestartMessage, "message", "", "notification text (default: last saved message)")
	restartCmd.AddCommand(restartSetCmd, restartCancelCmd, restartStatusCmd)
	rootCmd.AddCommand(restartCmd)
}
