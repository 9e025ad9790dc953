package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hikarisalon/concierge/internal/bot"
)

// localUserID is the stable user identifier for the terminal session.
const localUserID = "local-user"

var (
	userStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chatModel is the interactive chat loop. One turn per Enter press; replies
// are computed synchronously, matching the one-pass-per-message model.
type chatModel struct {
	bot      *bot.Bot
	input    textinput.Model
	messages []string
}

func newChatModel(b *bot.Bot) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = "メッセージを入力..."
	ti.CharLimit = 500

	return &chatModel{
		bot:   b,
		input: ti,
		messages: []string{
			dimStyle.Render("サロンAIチャット (Esc で終了)"),
		},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			reply := m.bot.Handle(context.Background(), localUserID, text)
			m.messages = append(m.messages,
				userStyle.Render("あなた: ")+text,
				botStyle.Render("ボット: ")+reply,
			)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n> ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
