package cmd

import (
	"testing"

	"github.com/sef-community/sefctl/internal/config"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	appConfig = &config.Config{
		Emergency: config.EmergencyConfig{Message: config.DefaultMessage},
		UI:        config.UIConfig{MaxWidth: 80, ForumURL: config.DefaultForumURL},
		Theme:     config.ThemeConfig{Preset: "default-dark", MarkdownStyle: "notty"},
		ExportDir: t.TempDir(),
	}
	jsonOutput = false
	t.Cleanup(func() { jsonOutput = false })
}
