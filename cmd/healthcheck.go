package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	hcSuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	hcWarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	hcErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hcInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	hcSectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check connectivity to the support API",
	Long: `Check the health of ticket-desk by verifying:
  • Configuration resolution (flag, environment, config file)
  • Local session state
  • Support API reachability (GET /health)
  • Ticket data accessibility

This command is useful for debugging connectivity issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(hcSectionStyle.Render("🔍 Ticket Desk Health Check"))
		fmt.Println()

		// Step 1: Resolve configuration
		fmt.Println(hcInfoStyle.Render("Step 1: Resolving configuration..."))
		cfg := loadConfig()
		base := internal.ResolveAPIURL(apiURL, cfg)
		fmt.Println(hcSuccessStyle.Render("✅ Configuration resolved"))
		if healthcheckVerbose {
			fmt.Printf("   API base URL: %s\n", base)
			topK, threshold := cfg.SearchTuning()
			fmt.Printf("   Search tuning: top_k=%d threshold=%.2f\n", topK, threshold)
		}
		fmt.Println()

		// Step 2: Check the local session
		fmt.Println(hcInfoStyle.Render("Step 2: Checking local session..."))
		user, err := currentUser()
		if err != nil {
			fmt.Println(hcWarningStyle.Render("⚠️  Failed to read session:"), err)
		} else if user == nil {
			fmt.Println(hcWarningStyle.Render("⚠️  Not logged in"))
			fmt.Println("   Admin commands will refuse to run until you log in.")
		} else {
			fmt.Println(hcSuccessStyle.Render(fmt.Sprintf("✅ Logged in as %s (%s)", user.Username, user.Role)))
		}
		fmt.Println()

		// Step 3: Probe the API
		fmt.Println(hcInfoStyle.Render("Step 3: Probing support API..."))
		client := internal.NewClient(base)
		apiHealthy := false
		if err := client.Health(cmd.Context()); err != nil {
			fmt.Println(hcErrorStyle.Render("❌ API unreachable:"), err)
		} else {
			apiHealthy = true
			fmt.Println(hcSuccessStyle.Render("✅ API responded to /health"))
		}
		fmt.Println()

		// Step 4: Try to load ticket data
		ticketCount := -1
		if apiHealthy {
			fmt.Println(hcInfoStyle.Render("Step 4: Loading ticket data..."))
			tickets, err := client.Tickets(cmd.Context(), "")
			if err != nil {
				fmt.Println(hcWarningStyle.Render("⚠️  Failed to load tickets:"), err)
			} else {
				ticketCount = len(tickets)
				fmt.Println(hcSuccessStyle.Render(fmt.Sprintf("✅ Found %d ticket(s)", ticketCount)))
				if healthcheckVerbose {
					for i, t := range tickets {
						if i >= 5 { // Show first 5
							fmt.Printf("   ... and %d more\n", len(tickets)-5)
							break
						}
						fmt.Printf("   [%d] %s (%s)\n", i+1, internal.ShortID(t.ID), t.Status)
					}
				}
			}
			fmt.Println()
		}

		// Summary
		fmt.Println(hcSectionStyle.Render("📊 Summary"))
		fmt.Println()
		if apiHealthy && ticketCount >= 0 {
			fmt.Println(hcSuccessStyle.Render("✅ Health check passed!"))
			fmt.Println(hcSuccessStyle.Render("   • API: Reachable"))
			fmt.Println(hcSuccessStyle.Render(fmt.Sprintf("   • Tickets: %d found", ticketCount)))
			return nil
		} else if apiHealthy {
			fmt.Println(hcWarningStyle.Render("⚠️  API reachable but ticket data is not"))
			return nil
		}
		fmt.Println(hcErrorStyle.Render("❌ Health check failed"))
		fmt.Println("   • The support API is not reachable")
		fmt.Println("   • Check the API base URL and that the backend is running")
		return fmt.Errorf("health check failed: API unreachable")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed diagnostic information")
}
