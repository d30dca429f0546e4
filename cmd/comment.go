package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	commentMessage    string
	commentResolution bool
)

var commentCmd = &cobra.Command{
	Use:   "comment <ticket-id>",
	Short: "Add a comment to a ticket",
	Long: `Add a comment to a ticket's thread. Requires a login; the comment is
attributed to the logged-in user. Admins may mark a comment as the
resolution with --resolution.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("not logged in (run 'ticket-desk login' first)")
		}
		if strings.TrimSpace(commentMessage) == "" {
			return fmt.Errorf("please provide a comment with --message")
		}
		if commentResolution && !user.IsAdmin() {
			return fmt.Errorf("only admins may mark a comment as the resolution")
		}

		ticketID := args[0]
		client := newClient()

		err = client.AddComment(cmd.Context(), internal.CommentRequest{
			TicketID:     ticketID,
			Content:      commentMessage,
			Author:       user.Role,
			AuthorName:   user.DisplayName(),
			IsResolution: commentResolution,
		})
		if err != nil {
			return fmt.Errorf("failed to add comment to %s: %w", ticketID, err)
		}

		if cm, err := newCacheManager(); err == nil {
			if err := cm.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			}
		}

		internal.PrintSuccess(fmt.Sprintf("Comment added to %s", ticketID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.Flags().StringVarP(&commentMessage, "message", "m", "", "Comment text")
	commentCmd.Flags().BoolVar(&commentResolution, "resolution", false, "Mark the comment as the resolution")
}
