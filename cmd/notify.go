package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sef-community/sefctl/internal/contacts"
	"github.com/sef-community/sefctl/internal/notify"
	"github.com/sef-community/sefctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// alerter is the part of notify.Notifier the command needs.
type alerter interface {
	NotifyAll(ctx context.Context, contacts []string) (notify.Report, error)
}

var (
	notifyTo  []string
	notifyYes bool
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send the emergency SMS to every contact",
	Long: `Send the configured emergency message to every emergency contact.
Contacts come from emergency.contacts in the config plus any --to flags.
A failed send to one contact does not stop delivery to the rest.

Requires sms.account_sid, sms.auth_token and sms.from.`,
	Example: `  sefctl notify
  sefctl notify --to +15551234567 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		book := contacts.NewBook(appConfig.Emergency.Contacts...)
		for _, n := range notifyTo {
			book.Add(n)
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		proceed, err := confirmNotify(cmd.OutOrStdout(), cmd.ErrOrStderr(), book, notifyYes, interactive,
			func(recipients []string) (bool, error) { return ui.ConfirmSend(recipients, theme()) })
		if err != nil || !proceed {
			return err
		}

		n, err := newNotifier()
		if err != nil {
			return err
		}
		return notifyRun(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), n, book)
	},
}

// errNeedsConfirmation is returned when there is no terminal to ask on and
// --yes was not given.
var errNeedsConfirmation = errors.New("refusing to send without confirmation; pass --yes")

// confirmNotify decides whether the send goes ahead. With no contacts it
// warns and stops without error. Otherwise it asks through confirm unless yes
// is set, and refuses outright when there is no terminal to ask on.
func confirmNotify(w, errw io.Writer, book *contacts.Book, yes, interactive bool, confirm func([]string) (bool, error)) (bool, error) {
	if book.Len() == 0 {
		ui.Warn(errw, "no emergency contacts. Add emergency.contacts to the config or pass --to.")
		return false, nil
	}
	if yes {
		return true, nil
	}
	if !interactive {
		return false, errNeedsConfirmation
	}
	ok, err := confirm(book.List())
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(w, "Cancelled.")
	}
	return ok, nil
}

func init() {
	notifyCmd.Flags().StringArrayVar(&notifyTo, "to", nil, "additional phone number (repeatable)")
	notifyCmd.Flags().BoolVarP(&notifyYes, "yes", "y", false, "send without asking for confirmation")
	rootCmd.AddCommand(notifyCmd)
}

func notifyRun(ctx context.Context, w, errw io.Writer, a alerter, book *contacts.Book) error {
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := a.NotifyAll(ctx, book.List())
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToReportJSON(report))
	}
	ui.FormatReport(w, report)
	if failed := len(report.Failed()); failed > 0 {
		ui.Warn(errw, "%d message(s) could not be sent.", failed)
	}
	return nil
}
