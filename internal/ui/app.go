package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sef-community/sefctl/internal/analysis"
	"github.com/sef-community/sefctl/internal/contacts"
	"github.com/sef-community/sefctl/internal/editor"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/notify"
	"github.com/sef-community/sefctl/internal/wellness"
)

type appTab int

const (
	tabAnalysis appTab = iota
	tabMood
	tabJournal
	tabResources
	tabForum
	tabCount
)

var tabNames = [tabCount]string{"Image Analysis", "Mood Tracker", "Journal", "Resources", "Community Forum"}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayNotice
	overlayPrompt
	overlayConfirm
	overlayExportChoice
	overlayMoodForm
	overlayJournalForm
	overlayJournalView
	overlayBreathing
)

type promptPurpose int

const (
	promptImage promptPurpose = iota
	promptContact
	promptExportMood
	promptExportJournal
)

// Analyzer starts one background image analysis.
type Analyzer interface {
	Start(ctx context.Context, imagePath string) (<-chan analysis.Result, error)
}

// Alerter sends the emergency message to every contact.
type Alerter interface {
	NotifyAll(ctx context.Context, contacts []string) (notify.Report, error)
}

// AppDeps are the stores and services the TUI reads and appends to.
type AppDeps struct {
	Moods    *mood.Store
	Journal  *journal.Store
	Contacts *contacts.Book
	// Analyzer is nil when analysis is not configured; AnalysisErr says why.
	Analyzer    Analyzer
	AnalysisErr error
	// Alerter is nil when SMS is not configured; AlertErr says why.
	Alerter  Alerter
	AlertErr error
	OpenURL  func(url string) error
}

// AppConfig holds configuration needed by the TUI.
type AppConfig struct {
	Theme        Theme
	Editor       string // resolved editor command
	MaxWidth     int    // 0 = no limit
	ChartRefresh time.Duration
	ForumURL     string
	ExportDir    string
}

type analysisDoneMsg struct{ result analysis.Result }

type chartTickMsg time.Time

type breathTickMsg struct{ gen int }

type notifyDoneMsg struct {
	report notify.Report
	err    error
}

type editorDoneMsg struct {
	title   string
	content string
	saved   bool
	err     error
}

type openedURLMsg struct{ err error }

// journalItem implements list.Item for journal.Entry.
type journalItem struct {
	entry journal.Entry
}

func (j journalItem) Title() string       { return j.entry.Label() }
func (j journalItem) Description() string { return j.entry.Preview(60) }
func (j journalItem) FilterValue() string { return j.entry.Title }

// appModel is the tabbed Bubble Tea model.
type appModel struct {
	deps AppDeps
	cfg  AppConfig
	rng  *rand.Rand
	now  func() time.Time

	tab     appTab
	overlay overlay

	// Image analysis
	imagePath    string
	analysisText string
	pending      bool
	share        bool
	spinner      spinner.Model

	// Mood tracker
	chart      string
	moodChoice mood.Mood
	moodDate   textinput.Model
	moodNotes  textarea.Model
	formFocus  int
	formErr    string

	// Journal
	journalList  list.Model
	journalTitle textinput.Model
	journalBody  textarea.Model
	viewer       viewport.Model

	// Overlays
	prompt        textinput.Model
	promptPurpose promptPurpose
	promptLabel   string
	confirmText   string
	noticeTitle   string
	noticeBody    string
	breathing     *wellness.Breathing
	breathGen     int

	width  int
	height int
	ready  bool
}

func newAppModel(deps AppDeps, cfg AppConfig) appModel {
	if cfg.ChartRefresh <= 0 {
		cfg.ChartRefresh = time.Minute
	}
	if deps.OpenURL == nil {
		deps.OpenURL = func(string) error { return nil }
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.AccentStyle()

	jl := cfg.Theme.NewList(nil, 0, 0)
	jl.Title = "Journal Entries"
	jl.SetShowHelp(false)
	jl.SetFilteringEnabled(false)
	jl.SetShowStatusBar(false)

	m := appModel{
		deps:        deps,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		spinner:     sp,
		journalList: jl,
		moodChoice:  mood.Neutral,
	}
	m.refreshJournal()
	m.refreshChart()
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.chartTick()
}

func (m appModel) chartTick() tea.Cmd {
	return tea.Tick(m.cfg.ChartRefresh, func(t time.Time) tea.Msg {
		return chartTickMsg(t)
	})
}

func breathTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return breathTickMsg{gen: gen}
	})
}

func waitForAnalysis(ch <-chan analysis.Result) tea.Cmd {
	return func() tea.Msg {
		return analysisDoneMsg{result: <-ch}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.journalList.SetSize(m.contentWidth(), max(m.height-6, 3))
		m.viewer.Width = m.contentWidth() - 4
		m.viewer.Height = max(m.height-8, 3)
		m.refreshChart()
		return m, nil

	case chartTickMsg:
		m.refreshChart()
		return m, m.chartTick()

	case analysisDoneMsg:
		m.pending = false
		m.analysisText = msg.result.Display()
		if msg.result.Err != nil {
			log.Printf("analysis failed: %v", msg.result.Err)
		}
		if m.share {
			m.showNotice("Shared", "Analysis shared anonymously with the SEF community.")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case breathTickMsg:
		if m.overlay != overlayBreathing || msg.gen != m.breathGen {
			return m, nil
		}
		m.breathing.Tick()
		return m, breathTick(m.breathGen)

	case notifyDoneMsg:
		if msg.err != nil {
			m.showNotice("Emergency Support", msg.err.Error())
			return m, nil
		}
		var b strings.Builder
		FormatReport(&b, msg.report)
		m.showNotice("Emergency contacts notified", stripTrailingNewline(b.String()))
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			m.showNotice("Editor", msg.err.Error())
			return m, nil
		}
		if msg.saved {
			m.deps.Journal.Add(msg.title, msg.content)
			m.refreshJournal()
		}
		return m, nil

	case openedURLMsg:
		if msg.err != nil {
			m.showNotice("Community Forum", fmt.Sprintf("Could not open browser: %v\n\n%s", msg.err, m.cfg.ForumURL))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}
		return m.updateKey(msg)
	}

	return m, nil
}

// updateKey handles keys when no overlay is open.
func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab", "left":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case "1", "2", "3", "4", "5":
		m.tab = appTab(msg.String()[0] - '1')
		return m, nil
	case "?":
		m.overlay = overlayHelp
		return m, nil
	case "!":
		return m.startEmergency()
	case "+":
		return m.openPrompt(promptContact, "Enter phone number:", "")
	case "C":
		return m.showContacts()
	case "E":
		m.overlay = overlayExportChoice
		return m, nil
	case "B":
		return m.startBreathing()
	case "A":
		m.showNotice("Daily Affirmation", wellness.Affirmation(m.rng))
		return m, nil
	case "R":
		m.showNotice("Crisis Resources", bulletList(wellness.CrisisLines()))
		return m, nil
	}

	switch m.tab {
	case tabAnalysis:
		return m.updateAnalysisTab(msg)
	case tabMood:
		if msg.String() == "n" {
			return m.openMoodForm()
		}
	case tabJournal:
		return m.updateJournalTab(msg)
	case tabForum:
		if msg.String() == "o" {
			url, open := m.cfg.ForumURL, m.deps.OpenURL
			return m, func() tea.Msg { return openedURLMsg{err: open(url)} }
		}
	}
	return m, nil
}

func (m appModel) updateAnalysisTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "u":
		return m.openPrompt(promptImage, "Image path (.png, .jpg, .jpeg):", m.imagePath)
	case "s":
		m.share = !m.share
		return m, nil
	case "x":
		if !m.pending {
			m.analysisText = ""
		}
		return m, nil
	case "enter", "a":
		return m.startAnalysis()
	}
	return m, nil
}

func (m appModel) startAnalysis() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	if m.imagePath == "" {
		m.showNotice("No Image", "Please upload an image first.")
		return m, nil
	}
	if m.deps.Analyzer == nil {
		m.showNotice("Analysis unavailable", fmt.Sprintf("Image analysis is not configured: %v", m.deps.AnalysisErr))
		return m, nil
	}

	ch, err := m.deps.Analyzer.Start(context.Background(), m.imagePath)
	if err != nil {
		// ErrBusy: a previous request is still finishing.
		return m, nil
	}
	m.pending = true
	m.analysisText = ""
	return m, tea.Batch(waitForAnalysis(ch), m.spinner.Tick)
}

func (m appModel) updateJournalTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		return m.openJournalForm()
	case "e":
		return m.composeInEditor()
	case "enter":
		e, err := m.deps.Journal.AtListIndex(m.journalList.Index())
		if err != nil {
			return m, nil
		}
		var b strings.Builder
		FormatJournalEntry(&b, e, m.contentWidth()-4, m.cfg.Theme.MarkdownStyle)
		m.viewer = viewport.New(m.contentWidth()-4, max(m.height-8, 3))
		m.viewer.SetContent(b.String())
		m.noticeTitle = "Journal Entry: " + e.Title
		m.overlay = overlayJournalView
		return m, nil
	}

	var cmd tea.Cmd
	m.journalList, cmd = m.journalList.Update(msg)
	return m, cmd
}

func (m appModel) composeInEditor() (tea.Model, tea.Cmd) {
	session, err := editor.Prepare(m.cfg.Editor, journal.DraftTemplate)
	if err != nil {
		m.showNotice("Editor", err.Error())
		return m, nil
	}
	return m, tea.ExecProcess(session.Command(), func(err error) tea.Msg {
		if err != nil {
			os.Remove(session.Path)
			return editorDoneMsg{err: fmt.Errorf("editor exited with error: %w", err)}
		}
		text, changed, err := session.Finish()
		if err != nil {
			return editorDoneMsg{err: err}
		}
		if !changed {
			return editorDoneMsg{}
		}
		title, content, err := journal.ParseDraft(text)
		if err != nil {
			return editorDoneMsg{err: err}
		}
		return editorDoneMsg{title: title, content: content, saved: true}
	})
}

func (m appModel) startEmergency() (tea.Model, tea.Cmd) {
	n := m.deps.Contacts.Len()
	if n == 0 {
		m.showNotice("No Emergency Contacts", "Please add emergency contacts first (press +).")
		return m, nil
	}
	if m.deps.Alerter == nil {
		m.showNotice("Emergency Support", fmt.Sprintf("SMS delivery is not configured: %v", m.deps.AlertErr))
		return m, nil
	}
	m.confirmText = fmt.Sprintf("Send emergency SMS to %d contact(s)?", n)
	m.overlay = overlayConfirm
	return m, nil
}

func (m appModel) sendEmergency() tea.Cmd {
	alerter := m.deps.Alerter
	numbers := m.deps.Contacts.List()
	return func() tea.Msg {
		report, err := alerter.NotifyAll(context.Background(), numbers)
		return notifyDoneMsg{report: report, err: err}
	}
}

func (m appModel) showContacts() (tea.Model, tea.Cmd) {
	numbers := m.deps.Contacts.List()
	if len(numbers) == 0 {
		m.showNotice("Emergency Contacts", "No emergency contacts added yet.")
		return m, nil
	}
	m.showNotice("Emergency Contacts", "Your emergency contacts:\n\n"+strings.Join(numbers, "\n"))
	return m, nil
}

func (m appModel) startBreathing() (tea.Model, tea.Cmd) {
	m.breathing = wellness.NewBreathing()
	m.breathGen++
	m.overlay = overlayBreathing
	return m, breathTick(m.breathGen)
}

func (m *appModel) showNotice(title, body string) {
	m.noticeTitle = title
	m.noticeBody = body
	m.overlay = overlayNotice
}

func (m *appModel) refreshChart() {
	w := m.contentWidth() - 4
	if !m.ready {
		w = 80
	}
	m.chart = RenderMoodChart(m.deps.Moods.Series(), w)
}

func (m *appModel) refreshJournal() {
	entries := m.deps.Journal.Newest()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = journalItem{entry: e}
	}
	m.journalList.SetItems(items)
	m.journalList.Select(0)
}

func (m appModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

// exportPath places relative names under the configured export directory.
func (m appModel) exportPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || filepath.IsAbs(name) || m.cfg.ExportDir == "" {
		return name
	}
	return filepath.Join(m.cfg.ExportDir, name)
}

func bulletList(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "• " + l
	}
	return strings.Join(out, "\n")
}

func stripTrailingNewline(s string) string {
	return strings.TrimRight(s, "\n")
}

// RunApp launches the tabbed TUI. Log output goes to debugLog when set and is
// discarded otherwise so it cannot draw over the screen.
func RunApp(deps AppDeps, cfg AppConfig, debugLog string) error {
	prev := log.Writer()
	defer log.SetOutput(prev)
	if debugLog != "" {
		f, err := tea.LogToFile(debugLog, "sefctl")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newAppModel(deps, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
