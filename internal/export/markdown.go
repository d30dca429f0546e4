package export

import (
	"fmt"
	"io"

	"github.com/iksnae/ticket-desk/internal"
)

// MarkdownExporter exports tickets in Markdown format
type MarkdownExporter struct{}

// Export writes one Markdown section per ticket
func (e *MarkdownExporter) Export(tickets []internal.Ticket, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Escalated Tickets\n\n")
	_, _ = fmt.Fprintf(w, "**Tickets:** %d\n\n", len(tickets))

	for i, t := range tickets {
		_, _ = fmt.Fprintf(w, "## Ticket %s\n\n", t.ID)
		_, _ = fmt.Fprintf(w, "**Status:** %s  \n", t.Status)
		_, _ = fmt.Fprintf(w, "**Submitted:** %s  \n", t.SubmittedAt)
		if t.ResolvedAt != "" {
			_, _ = fmt.Fprintf(w, "**Resolved:** %s", t.ResolvedAt)
			if t.ResolvedBy != "" {
				_, _ = fmt.Fprintf(w, " by %s", t.ResolvedBy)
			}
			_, _ = fmt.Fprintf(w, "  \n")
		}
		_, _ = fmt.Fprintf(w, "\n**Query:**\n\n%s\n\n", t.UserQuery)
		_, _ = fmt.Fprintf(w, "**AI Answer:**\n\n%s\n\n", t.AIAnswer)
		if t.UserFeedback != "" {
			_, _ = fmt.Fprintf(w, "**User Feedback:**\n\n%s\n\n", t.UserFeedback)
		}
		if t.AdminSolution != "" {
			_, _ = fmt.Fprintf(w, "**Admin Solution:**\n\n%s\n\n", t.AdminSolution)
		}

		if len(t.Comments) > 0 {
			_, _ = fmt.Fprintf(w, "**Comments:**\n\n")
			for _, c := range t.Comments {
				name := c.AuthorName
				if name == "" {
					name = c.Author
				}
				_, _ = fmt.Fprintf(w, "- %s (%s): %s\n", name, c.Timestamp, c.Content)
			}
			_, _ = fmt.Fprintf(w, "\n")
		}

		if i < len(tickets)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
