package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var forumPrint bool

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Open the SEF community forum",
	Long:  "Open the community forum (ui.forum_url) in the default browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return forumRun(cmd.OutOrStdout(), browser.OpenURL, forumPrint)
	},
}

func init() {
	forumCmd.Flags().BoolVar(&forumPrint, "print", false, "print the URL instead of opening it")
	rootCmd.AddCommand(forumCmd)
}

func forumRun(w io.Writer, open func(string) error, printOnly bool) error {
	url := appConfig.UI.ForumURL
	if printOnly {
		fmt.Fprintln(w, url)
		return nil
	}
	if err := open(url); err != nil {
		fmt.Fprintf(w, "Could not open a browser (%v). Visit:\n%s\n", err, url)
		return nil
	}
	fmt.Fprintf(w, "Opened %s\n", url)
	return nil
}
