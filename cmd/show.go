package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	ticketHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	ticketMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	sectionLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	commentAuthorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("135"))

	commentTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

var showCmd = &cobra.Command{
	Use:   "show <ticket-id>",
	Short: "Show a ticket with its comment thread",
	Long:  `Display one escalated ticket: query, answer, feedback, solution, and comments.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticketID := args[0]
		client := newClient()

		ticket, err := client.Ticket(cmd.Context(), ticketID)
		if err != nil {
			return fmt.Errorf("failed to load ticket %s: %w", ticketID, err)
		}

		fmt.Println(ticketHeaderStyle.Render(fmt.Sprintf("🎫 Ticket %s", ticket.ID)))

		meta := fmt.Sprintf("Status: %s  ·  Submitted: %s", ticket.Status, ticket.SubmittedAt)
		if ticket.ResolvedAt != "" {
			meta += fmt.Sprintf("  ·  Resolved: %s", ticket.ResolvedAt)
			if ticket.ResolvedBy != "" {
				meta += fmt.Sprintf(" by %s", ticket.ResolvedBy)
			}
		}
		fmt.Println(ticketMetaStyle.Render(meta))
		fmt.Println()

		printSection("Query", ticket.UserQuery)
		printSection("AI Answer", ticket.AIAnswer)
		if ticket.UserFeedback != "" {
			printSection("User Feedback", ticket.UserFeedback)
		}
		if ticket.AdminSolution != "" {
			printSection("Admin Solution", ticket.AdminSolution)
		}

		if len(ticket.ConversationHistory) > 0 {
			fmt.Println(sectionLabelStyle.Render("Conversation"))
			for _, entry := range ticket.ConversationHistory {
				fmt.Printf("  %s %s\n",
					commentAuthorStyle.Render(entry.Role+":"),
					firstLine(entry.Content))
			}
			fmt.Println()
		}

		if len(ticket.Comments) > 0 {
			fmt.Println(sectionLabelStyle.Render(fmt.Sprintf("Comments (%d)", len(ticket.Comments))))
			for _, c := range ticket.Comments {
				name := c.AuthorName
				if name == "" {
					name = c.Author
				}
				fmt.Printf("  %s %s\n    %s\n",
					commentAuthorStyle.Render(name),
					commentTimeStyle.Render(c.Timestamp),
					c.Content)
			}
		}

		return nil
	},
}

func printSection(label, text string) {
	fmt.Println(sectionLabelStyle.Render(label))
	fmt.Println(indentLines(internal.RenderNodes(internal.FormatMessage(text)), "  "))
	fmt.Println()
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
}
