// Package editor hands a draft to the user's $EDITOR and reads it back.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when the resolved editor command is blank.
var ErrEmptyCommand = errors.New("empty editor command")

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Session is one draft file waiting to be edited.
type Session struct {
	Path    string
	parts   []string
	initial string
}

// Prepare writes initial to a temp file and returns a session for editorCmd.
func Prepare(editorCmd, initial string) (*Session, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}

	tmp, err := os.CreateTemp("", "sefctl-*.md")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	return &Session{Path: tmp.Name(), parts: parts, initial: initial}, nil
}

// Command builds the editor process for the draft. The caller decides how to
// attach it to the terminal (tea.ExecProcess in the TUI).
func (s *Session) Command() *exec.Cmd {
	args := append(append([]string{}, s.parts[1:]...), s.Path)
	return exec.Command(s.parts[0], args...)
}

// Finish reads the edited draft and removes the temp file. An empty or
// unchanged buffer reports changed=false.
func (s *Session) Finish() (content string, changed bool, err error) {
	defer os.Remove(s.Path)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	result := string(data)
	if strings.TrimSpace(result) == "" {
		return "", false, nil
	}
	if strings.TrimSpace(result) == strings.TrimSpace(s.initial) {
		return s.initial, false, nil
	}
	return result, true, nil
}
