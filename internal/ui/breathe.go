package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sef-community/sefctl/internal/wellness"
)

type breatheTickMsg struct{}

// breatheModel runs the 4-7-8 exercise on its own, outside the tabbed app.
type breatheModel struct {
	breathing *wellness.Breathing
	cycles    int // 0 = until stopped
	theme     Theme
	done      bool
}

func (m breatheModel) Init() tea.Cmd {
	return breatheTick()
}

func breatheTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return breatheTickMsg{} })
}

func (m breatheModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			m.done = true
			return m, tea.Quit
		}
	case breatheTickMsg:
		m.breathing.Tick()
		if m.cycles > 0 && m.breathing.Cycles() >= m.cycles {
			m.done = true
			return m, tea.Quit
		}
		return m, breatheTick()
	}
	return m, nil
}

func (m breatheModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme
	return fmt.Sprintf("%s  %s   %s\n",
		t.CalmStyle().Bold(true).Render(fmt.Sprintf("%-15s", m.breathing.Phase().Instruction())),
		t.CalmStyle().Render(fmt.Sprintf("%2d", m.breathing.Remaining())),
		t.HelpStyle().Render(fmt.Sprintf("cycle %d • q stop", m.breathing.Cycles()+1)),
	)
}

// RunBreathing runs the breathing exercise inline for the given number of
// cycles. It returns the number of completed cycles.
func RunBreathing(cycles int, theme Theme) (int, error) {
	m := breatheModel{breathing: wellness.NewBreathing(), cycles: cycles, theme: theme}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return 0, err
	}
	return result.(breatheModel).breathing.Cycles(), nil
}
