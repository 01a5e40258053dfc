package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/wellness"
)

func (m appModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if box := m.overlayView(); box != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
			lipgloss.WithWhitespaceBackground(m.cfg.Theme.Background))
	}

	cw := m.contentWidth()
	sections := []string{m.tabBar(), ""}
	switch m.tab {
	case tabAnalysis:
		sections = append(sections, m.analysisView(cw))
	case tabMood:
		sections = append(sections, m.moodView())
	case tabJournal:
		sections = append(sections, m.journalList.View())
	case tabResources:
		sections = append(sections, m.resourcesView())
	case tabForum:
		sections = append(sections, m.forumView())
	}
	sections = append(sections, "", m.footer(cw))

	body := strings.Join(sections, "\n")
	if m.width > cw {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(body))
	}
	return body
}

func (m appModel) tabBar() string {
	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		tabs[i] = m.cfg.Theme.TabStyle(appTab(i) == m.tab).Render(fmt.Sprintf("%d %s", i+1, name))
	}
	emergency := m.cfg.Theme.DangerStyle().Render("! Emergency")
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " + emergency
}

func (m appModel) footer(width int) string {
	var hint string
	switch m.tab {
	case tabAnalysis:
		hint = "u upload • enter analyze • s share • x clear"
	case tabMood:
		hint = "n log mood"
	case tabJournal:
		hint = "n new • e $EDITOR • enter view"
	case tabForum:
		hint = "o open in browser"
	}
	common := "+ contact • C contacts • E export • B breathe • A affirm • R crisis • ? help • q quit"
	if hint != "" {
		hint += " • "
	}
	return m.cfg.Theme.HelpStyle().Width(width).Render(hint + common)
}

func (m appModel) analysisView(width int) string {
	t := m.cfg.Theme
	var b strings.Builder

	image := "No image selected. Press u to choose one."
	if m.imagePath != "" {
		image = "Image: " + m.imagePath
	}
	b.WriteString(t.HeaderStyle().Render(image) + "\n")

	share := "[ ]"
	if m.share {
		share = "[x]"
	}
	b.WriteString(t.HelpStyle().Render(share+" Share analysis anonymously with SEF community") + "\n\n")

	switch {
	case m.pending:
		b.WriteString(m.spinner.View() + " Analyzing image...")
	case m.analysisText != "":
		b.WriteString(t.BorderStyle().Width(width - 2).Render(
			RenderMarkdownWithStyle(m.analysisText, width-6, t.MarkdownStyle)))
	}
	return b.String()
}

func (m appModel) moodView() string {
	n := m.deps.Moods.Len()
	label := "entries"
	if n == 1 {
		label = "entry"
	}
	header := m.cfg.Theme.HeaderStyle().Render(fmt.Sprintf("Mood History    %d %s", n, label))
	return header + "\n\n" + m.chart
}

func (m appModel) resourcesView() string {
	t := m.cfg.Theme
	var b strings.Builder
	b.WriteString(t.HeaderStyle().Render("Mental Health Resources") + "\n")
	b.WriteString(bulletList(wellness.Resources()) + "\n\n")
	b.WriteString(t.HeaderStyle().Render("Today's Affirmation") + "\n")
	b.WriteString(t.CalmStyle().Render(wellness.DailyAffirmation(m.now())))
	return b.String()
}

func (m appModel) forumView() string {
	t := m.cfg.Theme
	return t.HeaderStyle().Render("SEF Community Forum") + "\n\n" +
		t.AccentStyle().Render(m.cfg.ForumURL) + "\n\n" +
		t.HelpStyle().Render("Press o to open the forum in your browser.")
}

func (m appModel) overlayView() string {
	t := m.cfg.Theme
	box := t.BorderStyle().Padding(1, 2)
	width := min(max(m.contentWidth()-8, 30), 72)

	switch m.overlay {
	case overlayHelp:
		return box.Width(52).Render(helpText)
	case overlayNotice:
		return box.Width(width).Render(t.HeaderStyle().Render(m.noticeTitle) + "\n\n" + m.noticeBody +
			"\n\n" + t.HelpStyle().Render("enter close"))
	case overlayPrompt:
		return box.Width(width).Render(m.promptLabel + "\n\n" + m.prompt.View() +
			"\n\n" + t.HelpStyle().Render("enter ok • esc cancel"))
	case overlayConfirm:
		return box.Width(width).Render(t.DangerStyle().Render(m.confirmText) + " [y/N]")
	case overlayExportChoice:
		return box.Width(width).Render(t.HeaderStyle().Render("Export Data") + "\n\n" +
			"m  Export Mood Data\nj  Export Journal Entries\n\n" + t.HelpStyle().Render("esc cancel"))
	case overlayMoodForm:
		return box.Width(width).Render(m.moodFormView())
	case overlayJournalForm:
		return box.Width(width).Render(t.HeaderStyle().Render("New Journal Entry") + "\n\n" +
			m.journalTitle.View() + "\n\n" + m.journalBody.View() + "\n\n" +
			t.HelpStyle().Render("tab switch field • ctrl+s save • esc cancel"))
	case overlayJournalView:
		return box.Width(m.contentWidth() - 2).Render(t.HeaderStyle().Render(m.noticeTitle) + "\n\n" +
			m.viewer.View() + "\n" + t.HelpStyle().Render("↑/↓ scroll • esc close"))
	case overlayBreathing:
		return box.Width(40).Align(lipgloss.Center).Render(m.breathingView())
	}
	return ""
}

func (m appModel) moodFormView() string {
	t := m.cfg.Theme
	var choices []string
	for _, md := range mood.All() {
		label := " " + md.String() + " "
		if md == m.moodChoice {
			label = t.AccentStyle().Bold(true).Render("[" + md.String() + "]")
		}
		choices = append(choices, label)
	}
	marker := func(field int) string {
		if m.formFocus == field {
			return t.AccentStyle().Render("> ")
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(t.HeaderStyle().Render("How are you feeling?") + "\n\n")
	b.WriteString(marker(focusMoodChoice) + strings.Join(choices, " ") + "\n\n")
	b.WriteString(marker(focusMoodDate) + "Date: " + m.moodDate.View() + "\n\n")
	b.WriteString(marker(focusMoodNotes) + "Notes:\n" + m.moodNotes.View() + "\n")
	if m.formErr != "" {
		b.WriteString("\n" + t.DangerStyle().Render(m.formErr) + "\n")
	}
	b.WriteString("\n" + t.HelpStyle().Render("←/→ mood • tab next field • ctrl+s save • esc cancel"))
	return b.String()
}

func (m appModel) breathingView() string {
	t := m.cfg.Theme
	if m.breathing == nil {
		return ""
	}
	return t.HeaderStyle().Render("4-7-8 Breathing") + "\n\n" +
		t.CalmStyle().Bold(true).Render(m.breathing.Phase().Instruction()) + "\n\n" +
		t.CalmStyle().Render(fmt.Sprintf("%d", m.breathing.Remaining())) + "\n\n" +
		t.HelpStyle().Render(fmt.Sprintf("cycles completed: %d • esc stop", m.breathing.Cycles()))
}

const helpText = `Tabs
  tab/shift+tab  next / previous tab
  1-5            jump to tab

Image Analysis
  u   choose image     enter  analyze
  s   toggle sharing   x      clear result

Mood / Journal
  n   new entry        e      journal in $EDITOR
  enter  view selected journal entry

Support
  !   contact emergency support
  +   add emergency contact
  C   view contacts    E      export data
  B   breathing        A      affirmation
  R   crisis resources

  q   quit             ?      close help`
