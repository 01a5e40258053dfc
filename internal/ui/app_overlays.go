package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sef-community/sefctl/internal/export"
	"github.com/sef-community/sefctl/internal/mood"
)

const (
	maxPromptLength = 500
	maxTitleLength  = 200
)

// Focus order inside the mood and journal forms.
const (
	focusMoodChoice = iota
	focusMoodDate
	focusMoodNotes
	moodFormFields
)

const (
	focusJournalTitle = iota
	focusJournalBody
	journalFormFields
)

func (m appModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayHelp, overlayNotice:
		switch msg.String() {
		case "esc", "enter", "q", "?", " ":
			m.overlay = overlayNone
		}
		return m, nil

	case overlayBreathing:
		switch msg.String() {
		case "esc", "enter", "q":
			m.overlay = overlayNone
			m.breathing = nil
		}
		return m, nil

	case overlayConfirm:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.overlay = overlayNone
			return m, m.sendEmergency()
		case "n", "enter", "esc":
			m.overlay = overlayNone
		}
		return m, nil

	case overlayExportChoice:
		switch msg.String() {
		case "m":
			return m.openPrompt(promptExportMood, "Save mood data as (CSV):", "mood.csv")
		case "j":
			return m.openPrompt(promptExportJournal, "Save journal entries as (text):", "journal.txt")
		case "esc", "q":
			m.overlay = overlayNone
		}
		return m, nil

	case overlayPrompt:
		return m.updatePrompt(msg)

	case overlayMoodForm:
		return m.updateMoodForm(msg)

	case overlayJournalForm:
		return m.updateJournalForm(msg)

	case overlayJournalView:
		switch msg.String() {
		case "esc", "q", "enter":
			m.overlay = overlayNone
			return m, nil
		}
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) openPrompt(purpose promptPurpose, label, value string) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = maxPromptLength
	ti.Width = max(m.contentWidth()-12, 20)
	ti.SetValue(value)
	ti.Focus()
	m.prompt = ti
	m.promptPurpose = purpose
	m.promptLabel = label
	m.overlay = overlayPrompt
	return m, textinput.Blink
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "enter":
		m.overlay = overlayNone
		return m.submitPrompt(strings.TrimSpace(m.prompt.Value()))
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m appModel) submitPrompt(value string) (tea.Model, tea.Cmd) {
	switch m.promptPurpose {
	case promptImage:
		if value == "" {
			return m, nil
		}
		info, err := os.Stat(value)
		if err != nil || info.IsDir() {
			m.showNotice("Open Image File", fmt.Sprintf("Cannot use %q as an image.", value))
			return m, nil
		}
		m.imagePath = value
		m.analysisText = ""

	case promptContact:
		if m.deps.Contacts.Add(value) {
			m.showNotice("Contact Added", fmt.Sprintf("Emergency contact %s added successfully.", value))
		}

	case promptExportMood:
		path := m.exportPath(value)
		written, err := export.MoodToFile(path, m.deps.Moods.Entries())
		m.exportNotice(path, written, err, "Mood data")

	case promptExportJournal:
		path := m.exportPath(value)
		written, err := export.JournalToFile(path, m.deps.Journal.Entries())
		m.exportNotice(path, written, err, "Journal entries")
	}
	return m, nil
}

func (m *appModel) exportNotice(path string, written bool, err error, what string) {
	switch {
	case err != nil:
		m.showNotice("Export Failed", err.Error())
	case written:
		m.showNotice("Export Successful", fmt.Sprintf("%s exported to %s.", what, path))
	}
}

func (m appModel) openMoodForm() (tea.Model, tea.Cmd) {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12
	date.SetValue(m.now().Format("2006-01-02"))

	notes := textarea.New()
	notes.Placeholder = "Notes..."
	notes.ShowLineNumbers = false
	notes.CharLimit = maxPromptLength
	notes.SetWidth(max(m.contentWidth()-12, 20))
	notes.SetHeight(4)

	m.moodDate = date
	m.moodNotes = notes
	m.moodChoice = mood.Neutral
	m.formFocus = focusMoodChoice
	m.formErr = ""
	m.overlay = overlayMoodForm
	return m, nil
}

func (m *appModel) focusMoodField() tea.Cmd {
	m.moodDate.Blur()
	m.moodNotes.Blur()
	switch m.formFocus {
	case focusMoodDate:
		return m.moodDate.Focus()
	case focusMoodNotes:
		return m.moodNotes.Focus()
	}
	return nil
}

func (m appModel) updateMoodForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab":
		m.formFocus = (m.formFocus + 1) % moodFormFields
		return m, m.focusMoodField()
	case "shift+tab":
		m.formFocus = (m.formFocus + moodFormFields - 1) % moodFormFields
		return m, m.focusMoodField()
	case "ctrl+s":
		return m.saveMood()
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case focusMoodChoice:
		switch msg.String() {
		case "left", "h":
			if m.moodChoice > mood.VerySad {
				m.moodChoice--
			}
		case "right", "l":
			if m.moodChoice < mood.VeryHappy {
				m.moodChoice++
			}
		case "enter":
			return m.saveMood()
		}
	case focusMoodDate:
		if msg.String() == "enter" {
			return m.saveMood()
		}
		m.moodDate, cmd = m.moodDate.Update(msg)
	case focusMoodNotes:
		m.moodNotes, cmd = m.moodNotes.Update(msg)
	}
	return m, cmd
}

func (m appModel) saveMood() (tea.Model, tea.Cmd) {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(m.moodDate.Value()), time.Local)
	if err != nil {
		m.formErr = "Date must look like YYYY-MM-DD."
		return m, nil
	}
	m.deps.Moods.Add(date, m.moodChoice, m.moodNotes.Value())
	m.refreshChart()
	m.overlay = overlayNone
	return m, nil
}

func (m appModel) openJournalForm() (tea.Model, tea.Cmd) {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = maxTitleLength
	title.Width = max(m.contentWidth()-12, 20)
	title.Focus()

	body := textarea.New()
	body.Placeholder = "Write your thoughts..."
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetWidth(max(m.contentWidth()-12, 20))
	body.SetHeight(max(min(m.height/3, 12), 4))

	m.journalTitle = title
	m.journalBody = body
	m.formFocus = focusJournalTitle
	m.overlay = overlayJournalForm
	return m, textinput.Blink
}

func (m *appModel) focusJournalField() tea.Cmd {
	if m.formFocus == focusJournalTitle {
		m.journalBody.Blur()
		return m.journalTitle.Focus()
	}
	m.journalTitle.Blur()
	return m.journalBody.Focus()
}

func (m appModel) updateJournalForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab", "shift+tab":
		m.formFocus = (m.formFocus + 1) % journalFormFields
		return m, m.focusJournalField()
	case "ctrl+s":
		m.deps.Journal.Add(strings.TrimSpace(m.journalTitle.Value()), m.journalBody.Value())
		m.refreshJournal()
		m.overlay = overlayNone
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == focusJournalTitle {
		if msg.String() == "enter" {
			m.formFocus = focusJournalBody
			return m, m.focusJournalField()
		}
		m.journalTitle, cmd = m.journalTitle.Update(msg)
	} else {
		m.journalBody, cmd = m.journalBody.Update(msg)
	}
	return m, cmd
}
