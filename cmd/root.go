package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	apiURL  string
	noCache bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ticket-desk",
	Short: "Terminal client for the AI support-ticket desk",
	Long: `A terminal client for the AI-assisted support-ticket service.

ticket-desk talks to the support API: chat with the AI assistant, escalate
unresolved conversations to the admin team, and manage the resulting tickets.

Features:
  • Interactive support chat with escalation to human admins
  • Similarity search over past tickets
  • Admin ticket list, detail view, resolution and comments
  • Dashboard statistics with optional live refresh
  • Ticket export (CSV, JSON, JSONL, Markdown, YAML)

Quick Start:
  ticket-desk login                    # Sign in (user or admin)
  ticket-desk chat                     # Talk to the support assistant
  ticket-desk list --status pending    # Review open tickets (admin)
  ticket-desk export --format csv      # Export tickets

The API base URL is taken from --api, the TICKETDESK_API_URL environment
variable, or ~/.ticket-desk.yaml, in that order.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Support API base URL")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the local ticket cache")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig reads ~/.ticket-desk.yaml; failures degrade to defaults
func loadConfig() *internal.Config {
	path, err := internal.DefaultConfigPath()
	if err != nil {
		internal.LogWarn("Failed to locate config file: %v", err)
		return &internal.Config{}
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		internal.LogWarn("Failed to read config file: %v", err)
		return &internal.Config{}
	}
	return cfg
}

// newClient builds the API client from flag/env/config precedence
func newClient() *internal.Client {
	cfg := loadConfig()
	base := internal.ResolveAPIURL(apiURL, cfg)
	internal.LogDebug("Using API base URL %s", base)
	return internal.NewClient(base)
}

// newSessionManager builds the login session manager
func newSessionManager() (*internal.SessionManager, error) {
	path, err := internal.DefaultSessionPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate session file: %w", err)
	}
	return internal.NewSessionManager(path), nil
}

// newCacheManager builds the local ticket cache manager
func newCacheManager() (*internal.CacheManager, error) {
	dir, err := internal.DefaultCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return internal.NewCacheManager(dir), nil
}

// currentUser returns the logged-in user, nil when logged out
func currentUser() (*internal.User, error) {
	sm, err := newSessionManager()
	if err != nil {
		return nil, err
	}
	return sm.Current()
}

// requireAdmin checks the advisory role gate for admin commands
func requireAdmin() (*internal.User, error) {
	user, err := currentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in (run 'ticket-desk login' first)")
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("this command requires the admin role (logged in as %s)", user.Username)
	}
	return user, nil
}
