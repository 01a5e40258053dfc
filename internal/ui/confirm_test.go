package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSendConfirmKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}
	for _, tt := range tests {
		updated, cmd := sendConfirmModel{recipients: []string{"+1555"}}.Update(tt.key)
		m := updated.(sendConfirmModel)
		if !m.done || cmd == nil {
			t.Errorf("%s: expected the prompt to finish", tt.key)
		}
		if m.confirmed != tt.want {
			t.Errorf("%s: confirmed = %v, want %v", tt.key, m.confirmed, tt.want)
		}
	}
}

func TestSendConfirmIgnoresOtherKeys(t *testing.T) {
	updated, cmd := sendConfirmModel{}.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m := updated.(sendConfirmModel); m.done || cmd != nil {
		t.Error("expected unrelated keys to leave the prompt open")
	}
}

func TestSendConfirmViewListsRecipients(t *testing.T) {
	m := sendConfirmModel{recipients: []string{"+15550001", "+15550002"}, theme: presets["default-dark"]}
	out := stripANSI(m.View())
	for _, want := range []string{"2 contact(s)", "+15550001", "+15550002", "[y/N]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in prompt, got %q", want, out)
		}
	}
}

func TestSendConfirmViewCapsList(t *testing.T) {
	var recipients []string
	for i := range 8 {
		recipients = append(recipients, fmt.Sprintf("+1555000%d", i))
	}
	out := stripANSI(sendConfirmModel{recipients: recipients}.View())
	if strings.Contains(out, "+15550005") {
		t.Errorf("expected list capped at %d numbers, got %q", maxListedRecipients, out)
	}
	if !strings.Contains(out, "and 3 more") {
		t.Errorf("expected overflow note, got %q", out)
	}
}

func TestSendConfirmViewEmptyWhenDone(t *testing.T) {
	if got := (sendConfirmModel{done: true}).View(); got != "" {
		t.Errorf("expected empty view once answered, got %q", got)
	}
}
