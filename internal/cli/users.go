package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List local accounts available for lockout management",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := a.lockouts.Users(cmd.Context(), a.cfg.ExcludedUsers)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No manageable local accounts found.")
			return nil
		}
		for _, u := range users {
			fmt.Println(u)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
