package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sef-community/sefctl/internal/ui"
	"github.com/spf13/cobra"
)

// shareNotice is shown when --share is set. Nothing is transmitted.
const shareNotice = "Analysis shared anonymously with the SEF community."

// imageAnalyzer is the part of analysis.Requester the command needs.
type imageAnalyzer interface {
	Request(ctx context.Context, imagePath string) (string, error)
}

// AnalysisResult is the JSON form of an analyze run.
type AnalysisResult struct {
	Image    string `json:"image"`
	Analysis string `json:"analysis"`
	Shared   bool   `json:"shared"`
}

var analyzeShare bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze an image for signs of distress",
	Long: `Send a local image to the configured image-understanding model and print
its analysis and safety recommendations.

Requires analysis.api_key (or SEFCTL_ANALYSIS_API_KEY).`,
	Example: `  sefctl analyze photo.jpg
  sefctl analyze photo.jpg --share
  sefctl analyze photo.jpg --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requester, err := newRequester()
		if err != nil {
			return err
		}
		return analyzeRun(cmd.Context(), cmd.OutOrStdout(), requester, args[0], analyzeShare)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeShare, "share", false, "share the analysis anonymously with the SEF community")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeRun(ctx context.Context, w io.Writer, a imageAnalyzer, imagePath string, share bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	info, err := os.Stat(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("reading image: %s is a directory", imagePath)
	}

	text, err := a.Request(ctx, imagePath)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, AnalysisResult{Image: imagePath, Analysis: text, Shared: share})
	}

	var b strings.Builder
	b.WriteString(ui.RenderMarkdownWithStyle(text, appConfig.UI.MaxWidth, appConfig.Theme.MarkdownStyle))
	b.WriteString("\n")
	if share {
		b.WriteString("\n" + shareNotice + "\n")
	}
	return ui.OutputOrPage(w, b.String(), false, appConfig.UI.MaxWidth, theme())
}
