package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ticket-desk/internal"
	"github.com/spf13/cobra"
)

var (
	chatHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	chatBotLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("135"))

	chatUserLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	chatNoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	chatHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the AI support assistant",
	Long: `Start an interactive chat session with the AI support assistant.

Each question is answered from the ticket knowledge base. If an answer does
not help, escalate the conversation to the admin team and a ticket is
created from it.

Commands inside the chat:
  /escalate   Escalate the last answer to the admin team
  /new        Start a new conversation
  /quit       Leave the chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		ctx := cmd.Context()

		// Advisory connectivity probe, mirroring the widget's health check.
		if err := client.Health(ctx); err != nil {
			internal.PrintWarning(fmt.Sprintf("Support API not reachable: %v", err))
		}

		session := internal.NewChatSession(client)

		fmt.Println(chatHeaderStyle.Render("💬 AI Support Assistant"))
		fmt.Println(chatHintStyle.Render("   /escalate to raise a ticket, /new for a fresh conversation, /quit to exit"))
		fmt.Println()
		printBotMessage(session.Messages()[0])

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if session.AwaitingDetails() {
				fmt.Print(chatNoticeStyle.Render("describe your issue> "))
			} else {
				fmt.Print(chatUserLabelStyle.Render("you> "))
			}

			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())

			switch line {
			case "":
				continue
			case "/quit", "/exit":
				return nil
			case "/new":
				session.StartNewConversation()
				fmt.Println()
				printBotMessage(session.Messages()[0])
				continue
			case "/escalate":
				last := session.LastAnswer()
				if last == nil {
					fmt.Println(chatNoticeStyle.Render("Nothing to escalate yet - ask a question first."))
					continue
				}
				if prompt := session.Escalate(last); prompt != nil {
					printBotMessage(*prompt)
				}
				continue
			}

			replies := sendWithSpinner(ctx, session, line)
			for _, msg := range replies {
				if !msg.IsUser {
					printBotMessage(msg)
				}
			}
			if session.Disconnected() {
				fmt.Println(chatNoticeStyle.Render("⚠ Connection to the support API looks down; answers may keep failing."))
			}
		}
		return scanner.Err()
	},
}

func sendWithSpinner(ctx context.Context, session *internal.ChatSession, text string) []internal.Message {
	var replies []internal.Message
	_ = internal.ShowProgress(ctx, "Assistant is typing...", func() error {
		replies = session.SendMessage(ctx, text)
		return nil
	})
	return replies
}

func printBotMessage(msg internal.Message) {
	fmt.Println(chatBotLabelStyle.Render("assistant:"))
	fmt.Println(indentLines(internal.RenderNodes(internal.FormatMessage(msg.Text)), "  "))
	fmt.Println()
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
