package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newChatCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the bot in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := buildApp(*configPath, false)
			if err != nil {
				return err
			}
			defer app.Close()

			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				p := tea.NewProgram(newChatModel(app.Bot))
				_, err := p.Run()
				return err
			}

			// Piped input: one message per line, one reply per line.
			return runPipedChat(cmd.Context(), app)
		},
	}
}

func runPipedChat(ctx context.Context, app *App) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fmt.Println(app.Bot.Handle(ctx, localUserID, text))
	}
	return scanner.Err()
}
