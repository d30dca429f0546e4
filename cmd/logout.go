package cmd

import (
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sm, err := newSessionManager()
		if err != nil {
			return err
		}
		if err := sm.Logout(); err != nil {
			return err
		}
		internal.PrintSuccess("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
