package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sef-community/sefctl/internal/ui"
	"github.com/sef-community/sefctl/internal/wellness"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List mental health resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return resourcesRun(cmd.OutOrStdout())
	},
}

var crisisCmd = &cobra.Command{
	Use:   "crisis",
	Short: "List crisis hotlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return crisisRun(cmd.OutOrStdout())
	},
}

var (
	affirmDaily bool
	affirmAll   bool
)

var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Print an affirmation",
	Long:  "Print a random affirmation, or with --daily the same affirmation all day.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if affirmAll {
			return affirmListRun(cmd.OutOrStdout())
		}
		var r *rand.Rand
		if !affirmDaily {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return affirmRun(cmd.OutOrStdout(), r, time.Now())
	},
}

var breatheCycles int

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Guided 4-7-8 breathing exercise",
	Long: `Breathe in for 4 seconds, hold for 7, breathe out for 8.
Runs for --cycles rounds (0 runs until you press q).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if breatheCycles < 0 {
			return fmt.Errorf("--cycles must not be negative")
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return breathePlan(cmd.OutOrStdout())
		}
		done, err := ui.RunBreathing(breatheCycles, theme())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed %d cycle(s). Well done.\n", done)
		return nil
	},
}

func init() {
	affirmCmd.Flags().BoolVar(&affirmDaily, "daily", false, "today's affirmation instead of a random one")
	affirmCmd.Flags().BoolVar(&affirmAll, "all", false, "list every affirmation")
	breatheCmd.Flags().IntVar(&breatheCycles, "cycles", 4, "number of breathing cycles (0 = until stopped)")
	rootCmd.AddCommand(resourcesCmd, crisisCmd, affirmCmd, breatheCmd)
}

// ResourceList is the JSON form of the resources and crisis commands.
type ResourceList struct {
	Resources   []string `json:"resources,omitempty"`
	CrisisLines []string `json:"crisis_lines,omitempty"`
}

func resourcesRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, ResourceList{Resources: wellness.Resources()})
	}
	ui.FormatLines(w, "Mental Health Resources", wellness.Resources())
	return nil
}

func crisisRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, ResourceList{CrisisLines: wellness.CrisisLines()})
	}
	ui.FormatLines(w, "Crisis Resources", wellness.CrisisLines())
	return nil
}

// affirmRun prints a random affirmation from r, or the one for day when r is nil.
func affirmRun(w io.Writer, r *rand.Rand, day time.Time) error {
	text := wellness.DailyAffirmation(day)
	if r != nil {
		text = wellness.Affirmation(r)
	}
	if jsonOutput {
		return ui.FormatJSON(w, map[string]string{"affirmation": text})
	}
	fmt.Fprintln(w, text)
	return nil
}

func affirmListRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, map[string][]string{"affirmations": wellness.Affirmations()})
	}
	ui.FormatLines(w, "Affirmations", wellness.Affirmations())
	return nil
}

// breathePlan prints the exercise steps when there is no terminal to animate.
func breathePlan(w io.Writer) error {
	for _, p := range []wellness.Phase{wellness.Inhale, wellness.Hold, wellness.Exhale} {
		fmt.Fprintf(w, "%-15s %d seconds\n", p.Instruction(), p.Seconds())
	}
	return nil
}
