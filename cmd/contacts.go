package cmd

import (
	"io"

	"github.com/sef-community/sefctl/internal/contacts"
	"github.com/sef-community/sefctl/internal/ui"
	"github.com/spf13/cobra"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List emergency contacts",
	Long:  "List the emergency contacts configured under emergency.contacts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return contactsRun(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
}

func contactsRun(w io.Writer) error {
	numbers := contacts.NewBook(appConfig.Emergency.Contacts...).List()
	if jsonOutput {
		return ui.FormatJSON(w, numbers)
	}
	ui.FormatContacts(w, numbers)
	return nil
}
