package cmd

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/pkg/browser"
	"github.com/sef-community/sefctl/internal/analysis"
	"github.com/sef-community/sefctl/internal/config"
	"github.com/sef-community/sefctl/internal/contacts"
	"github.com/sef-community/sefctl/internal/editor"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/notify"
	"github.com/sef-community/sefctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const debugLogFile = "sefctl-debug.log"

var (
	cfgFile    string
	jsonOutput bool
	appConfig  *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sefctl",
	Short: "Mental health support in the terminal",
	Long: `sefctl offers image-based distress analysis, a mood tracker with a chart,
a private journal, wellness tools and emergency SMS notification.

Everything you record lives only for the session; export it to keep it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg
		if p := cfg.Theme.Preset; p != "" && !slices.Contains(ui.PresetNames(), p) {
			ui.Warn(cmd.ErrOrStderr(), "unknown theme preset %q, using default-dark (available: %s)",
				p, strings.Join(ui.PresetNames(), ", "))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: print the resource list
			return resourcesRun(cmd.OutOrStdout())
		}

		deps := ui.AppDeps{
			Moods:    mood.NewStore(),
			Journal:  journal.NewStore(),
			Contacts: contacts.NewBook(appConfig.Emergency.Contacts...),
			OpenURL:  browser.OpenURL,
		}
		if r, err := newRequester(); err != nil {
			deps.AnalysisErr = err
		} else {
			deps.Analyzer = r
		}
		if n, err := newNotifier(); err != nil {
			deps.AlertErr = err
		} else {
			deps.Alerter = n
		}

		debugLog := ""
		if os.Getenv("SEFCTL_DEBUG") != "" {
			debugLog = debugLogFile
		}
		return ui.RunApp(deps, ui.AppConfig{
			Theme:        ui.ResolveTheme(appConfig.Theme),
			Editor:       editor.ResolveEditor(appConfig.Editor),
			MaxWidth:     appConfig.UI.MaxWidth,
			ChartRefresh: appConfig.UI.ChartRefresh,
			ForumURL:     appConfig.UI.ForumURL,
			ExportDir:    appConfig.ExportDir,
		}, debugLog)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// newRequester builds the analysis client after checking its credentials.
func newRequester() (*analysis.Requester, error) {
	if err := appConfig.Analysis.Validate(); err != nil {
		return nil, err
	}
	return analysis.New(appConfig.Analysis), nil
}

// newNotifier builds the SMS notifier after checking its credentials.
func newNotifier() (*notify.Notifier, error) {
	sender, err := notify.NewTwilioSender(appConfig.SMS)
	if err != nil {
		return nil, err
	}
	return notify.New(sender, appConfig.Emergency.Message, log.Default())
}

func theme() ui.Theme {
	return ui.ResolveTheme(appConfig.Theme)
}
