package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var statsWatch bool

// Dashboard refresh cadence when --watch is enabled
const statsRefreshInterval = 30 * time.Second

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statsValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statsTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the escalation dashboard (admin)",
	Long: `Show the admin dashboard counters: escalated, pending, resolved, and
the resolution rate.

With --watch, the dashboard refreshes every 30 seconds. Refreshes are
best-effort: a failed refresh keeps the last good data on screen next to
a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		client := newClient()

		var last *internal.Stats
		refresh := func() {
			stats, err := client.Stats(cmd.Context())
			if err != nil {
				internal.PrintWarning(fmt.Sprintf("Failed to refresh stats: %v", err))
				if last != nil {
					displayStats(last)
				}
				return
			}
			last = stats
			displayStats(stats)
		}

		refresh()
		if !statsWatch {
			if last == nil {
				return fmt.Errorf("failed to load stats")
			}
			return nil
		}

		ticker := time.NewTicker(statsRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case <-ticker.C:
				refresh()
			}
		}
	},
}

func displayStats(stats *internal.Stats) {
	fmt.Println(statsHeaderStyle.Render("📊 Ticket Dashboard"))
	fmt.Println()
	fmt.Printf("  %s %s\n", statsLabelStyle.Render("Escalated tickets:"),
		statsValueStyle.Render(fmt.Sprintf("%d", stats.TotalEscalatedTickets)))
	fmt.Printf("  %s %s\n", statsLabelStyle.Render("Pending:          "),
		pendingStyle.Render(fmt.Sprintf("%d", stats.PendingTickets)))
	fmt.Printf("  %s %s\n", statsLabelStyle.Render("Resolved:         "),
		resolvedStyle.Render(fmt.Sprintf("%d", stats.ResolvedTickets)))
	fmt.Printf("  %s %s\n", statsLabelStyle.Render("Resolution rate:  "),
		statsValueStyle.Render(fmt.Sprintf("%.1f%%", stats.ResolutionRate)))
	fmt.Println()
	fmt.Println(statsTimeStyle.Render("  Last updated " + time.Now().Format("15:04:05")))
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVarP(&statsWatch, "watch", "w", false, "Refresh every 30 seconds")
}
