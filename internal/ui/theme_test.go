package ui

import (
	"testing"

	"github.com/sef-community/sefctl/internal/config"
)

func TestResolveThemeDefaultDark(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	if string(theme.Primary) == "" {
		t.Error("expected primary color to be set")
	}
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected markdown_style 'dark', got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:        "sef",
		Primary:       "#FF0000",
		MarkdownStyle: "notty",
	})

	if string(theme.Primary) != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", string(theme.Primary))
	}
	if string(theme.Accent) != "#4CAF50" {
		t.Errorf("expected preset accent to survive, got %q", string(theme.Accent))
	}
	if theme.MarkdownStyle != "notty" {
		t.Errorf("expected markdown_style 'notty', got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"})
	if theme != presets["default-dark"] {
		t.Errorf("expected default-dark fallback, got %+v", theme)
	}
}

func TestPresetNamesResolve(t *testing.T) {
	for _, name := range PresetNames() {
		if _, ok := presets[name]; !ok {
			t.Errorf("preset %q listed but not defined", name)
		}
	}
}
