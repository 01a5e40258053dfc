package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxListedRecipients caps how many numbers the send prompt spells out.
const maxListedRecipients = 5

// sendConfirmModel asks before the emergency SMS goes out. Anything other
// than y cancels, so a stray enter never sends.
type sendConfirmModel struct {
	recipients []string
	confirmed  bool
	done       bool
	theme      Theme
}

func (m sendConfirmModel) Init() tea.Cmd {
	return nil
}

func (m sendConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.confirmed = true
	case "n", "enter", "esc", "q", "ctrl+c":
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m sendConfirmModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.DangerStyle().Render(
		fmt.Sprintf("Send the emergency SMS to %d contact(s)?", len(m.recipients))))
	b.WriteString("\n")
	for i, r := range m.recipients {
		if i == maxListedRecipients {
			b.WriteString(m.theme.HelpStyle().Render(
				fmt.Sprintf("  ... and %d more", len(m.recipients)-maxListedRecipients)) + "\n")
			break
		}
		b.WriteString("  • " + r + "\n")
	}
	b.WriteString(m.theme.AccentStyle().Render("[y/N] "))
	return b.String()
}

// ConfirmSend lists the recipients and asks whether to send the emergency
// message to them. It returns true only when the user presses y.
func ConfirmSend(recipients []string, theme Theme) (bool, error) {
	p := tea.NewProgram(sendConfirmModel{recipients: recipients, theme: theme})
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(sendConfirmModel).confirmed, nil
}
