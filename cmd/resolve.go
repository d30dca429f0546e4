package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var resolveSolution string

var resolveCmd = &cobra.Command{
	Use:   "resolve <ticket-id>",
	Short: "Resolve a ticket with a solution (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}
		if strings.TrimSpace(resolveSolution) == "" {
			return fmt.Errorf("please provide a solution with --solution")
		}

		ticketID := args[0]
		client := newClient()

		if err := client.Resolve(cmd.Context(), ticketID, resolveSolution); err != nil {
			return fmt.Errorf("failed to resolve ticket %s: %w", ticketID, err)
		}

		// The cached list is now stale.
		if cm, err := newCacheManager(); err == nil {
			if err := cm.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			}
		}

		internal.PrintSuccess(fmt.Sprintf("Ticket %s resolved", ticketID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveSolution, "solution", "s", "", "Solution text for the ticket")
}
