package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	listStatus     string
	listSearch     string
	listClearCache bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	resolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List escalated tickets",
	Long: `List escalated tickets from the support API (admin role).

Tickets are served from a short-lived local cache; --no-cache forces a
fresh fetch. --search asks the server first and falls back to substring
matching over the loaded tickets when the server search fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		client := newClient()
		cm, err := newCacheManager()
		if err != nil {
			internal.LogWarn("Ticket cache unavailable: %v", err)
			cm = nil
		}

		if listClearCache && cm != nil {
			if err := cm.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			} else {
				internal.LogInfo("Cache cleared")
			}
		}

		tickets, err := internal.FetchTickets(cmd.Context(), client, cm, noCache)
		if err != nil {
			return fmt.Errorf("failed to load tickets: %w", err)
		}

		tickets = internal.FilterByStatus(tickets, listStatus)

		if listSearch != "" {
			tickets = searchTickets(cmd, client, tickets, listSearch)
		}

		displayTickets(tickets)
		return nil
	},
}

// searchTickets narrows the list via the server-side search, falling
// back to a local substring filter when the server path fails.
func searchTickets(cmd *cobra.Command, client *internal.Client, tickets []internal.Ticket, term string) []internal.Ticket {
	resp, err := client.QuickSearch(cmd.Context(), term)
	if err != nil {
		internal.LogWarn("Server search failed (%v), filtering locally", err)
		return internal.FilterTickets(tickets, term)
	}
	return internal.IntersectSearchResults(tickets, resp.Results)
}

func displayTickets(tickets []internal.Ticket) {
	if len(tickets) == 0 {
		fmt.Println(headerStyle.Render("🎫 No tickets found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("🎫 Found %d ticket(s)", len(tickets)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Status")+"\t"+titleStyle.Render("Query")+"\t"+titleStyle.Render("Submitted")+"\t"+titleStyle.Render("Comments")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, ticket := range tickets {
		query := ticket.UserQuery
		if len(query) > 50 {
			query = query[:47] + "..."
		}

		status := ticket.Status
		switch status {
		case internal.StatusPending:
			status = pendingStyle.Render(status)
		case internal.StatusResolved:
			status = resolvedStyle.Render(status)
		}

		submitted := dateStyle.Render("—")
		if t := ticket.GetSubmittedAt(); !t.IsZero() {
			submitted = dateStyle.Render(relativeDate(t))
		}

		id := idStyle.Render(internal.ShortID(ticket.ID))
		comments := strconv.Itoa(len(ticket.Comments))

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", id, status, query, submitted, comments)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(tickets[0].ID) +
		idStyle.Render(") with `ticket-desk show <id>`"))
}

// relativeDate formats a timestamp the way the session list does:
// denser formats the closer the date is to now
func relativeDate(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, resolved)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search tickets by text")
	listCmd.Flags().BoolVar(&listClearCache, "clear-cache", false, "Clear the cache before running")
}
