package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and start a session",
	Long: `Sign in with a username and password and store the session locally.

The session only selects which commands are offered (admin commands need
the admin role); the support API itself is unauthenticated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sm, err := newSessionManager()
		if err != nil {
			return err
		}

		username := loginUsername
		password := loginPassword
		reader := bufio.NewReader(os.Stdin)

		if username == "" {
			fmt.Print("Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Print("Password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		user, err := sm.Login(username, password)
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Logged in as %s (%s)", user.Username, user.Role))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
}
