package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	searchTopK      int
	searchThreshold float64
)

var (
	searchAnswerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	searchMatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the ticket knowledge base",
	Long: `Run a one-shot similarity search and print the assistant's answer
together with the past tickets it was grounded on.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		client := newClient()
		cfg := loadConfig()
		topK, threshold := cfg.SearchTuning()
		if searchTopK > 0 {
			topK = searchTopK
		}
		if searchThreshold > 0 {
			threshold = searchThreshold
		}

		var resp *internal.SearchResponse
		err := internal.ShowProgress(cmd.Context(), "Searching knowledge base", func() error {
			var searchErr error
			resp, searchErr = client.Search(cmd.Context(), internal.SearchRequest{
				Query:               query,
				TopK:                topK,
				SimilarityThreshold: threshold,
			})
			return searchErr
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		fmt.Println()
		fmt.Println(searchAnswerStyle.Render("Answer"))
		fmt.Println(indentLines(internal.RenderNodes(internal.FormatMessage(resp.Answer)), "  "))

		if len(resp.RelevantTickets) > 0 {
			fmt.Println()
			fmt.Println(searchAnswerStyle.Render("Related tickets"))
			w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(w, "  TICKET\tCATEGORY\tDISTANCE\tPROBLEM")
			for _, t := range resp.RelevantTickets {
				problem := t.Problem
				if len(problem) > 60 {
					problem = problem[:57] + "..."
				}
				_, _ = fmt.Fprintf(w, "  %s\t%s\t%.3f\t%s\n",
					internal.ShortID(t.TicketID), t.Category, t.Distance,
					searchMatchStyle.Render(problem))
			}
			_ = w.Flush()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchTopK, "top-k", 0, "Number of matches to retrieve")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", 0, "Similarity threshold")
}
