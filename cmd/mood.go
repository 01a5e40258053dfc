package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sef-community/sefctl/internal/export"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Work with exported mood data",
}

var moodChartCmd = &cobra.Command{
	Use:   "chart <file.csv>",
	Short: "Chart a mood export",
	Long:  "Draw the mood line chart from a CSV written by the mood export (Date,Mood,Notes).",
	Example: `  sefctl mood chart mood.csv
  sefctl mood chart mood.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := appConfig.UI.MaxWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (width <= 0 || w < width) {
			width = w
		}
		return moodChartRun(cmd.OutOrStdout(), args[0], width)
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list <file.csv>",
	Short: "List the entries of a mood export",
	Example: `  sefctl mood list mood.csv
  sefctl mood list mood.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moodListRun(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	moodCmd.AddCommand(moodChartCmd)
	moodCmd.AddCommand(moodListCmd)
	rootCmd.AddCommand(moodCmd)
}

func readMoodExport(path string) ([]mood.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mood export: %w", err)
	}
	defer f.Close()
	return export.ReadMoodCSV(f)
}

func moodListRun(w io.Writer, path string) error {
	entries, err := readMoodExport(path)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, entries)
	}
	ui.FormatMoodList(w, entries)
	return nil
}

func moodChartRun(w io.Writer, path string, width int) error {
	entries, err := readMoodExport(path)
	if err != nil {
		return err
	}
	points := mood.SeriesOf(entries)

	if jsonOutput {
		return ui.FormatJSON(w, points)
	}
	fmt.Fprintln(w, ui.RenderMoodChart(points, width))
	return nil
}
