package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/notify"
)

var bold = color.New(color.Bold)

// Warn writes a highlighted warning line.
func Warn(w io.Writer, format string, args ...any) {
	color.New(color.FgHiYellow, color.Bold).Fprintf(w, "Warning: "+format+"\n", args...)
}

// FormatMoodList formats mood entries in insertion order.
func FormatMoodList(w io.Writer, entries []mood.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mood entries recorded.")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("DATE"), bold.Sprint("MOOD"), bold.Sprint("NOTES"))
	for _, e := range entries {
		tbl.AddRow(e.DateString(), e.Mood.String(), e.Notes)
	}
	fmt.Fprintln(w, tbl)
}

// FormatJournalEntry formats a full, read-only entry.
func FormatJournalEntry(w io.Writer, e journal.Entry, width int, markdownStyle string) {
	fmt.Fprintf(w, "Date: %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Title: %s\n", e.Title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderMarkdownWithStyle(e.Content, width, markdownStyle))
}

// FormatLines prints a titled list such as resources or hotlines.
func FormatLines(w io.Writer, title string, lines []string) {
	fmt.Fprintln(w, bold.Sprint(title))
	for _, l := range lines {
		fmt.Fprintf(w, "  • %s\n", l)
	}
}

// FormatContacts lists emergency contacts with their position.
func FormatContacts(w io.Writer, contacts []string) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "No emergency contacts configured.")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("NUMBER"))
	for i, c := range contacts {
		tbl.AddRow(i+1, c)
	}
	fmt.Fprintln(w, tbl)
}

// FormatReport summarizes an emergency notification run.
func FormatReport(w io.Writer, r notify.Report) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("TO"), bold.Sprint("STATUS"))
	for _, d := range r.Deliveries {
		status := "sent"
		if d.Err != nil {
			status = "failed: " + d.Err.Error()
		}
		tbl.AddRow(d.To, status)
	}
	fmt.Fprintln(w, tbl)
	fmt.Fprintf(w, "%d of %d messages sent.\n", r.Sent(), len(r.Deliveries))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DeliveryJSON is the JSON form of one notification attempt.
type DeliveryJSON struct {
	To    string `json:"to"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// ReportJSON is the JSON form of a notify.Report.
type ReportJSON struct {
	Message    string         `json:"message"`
	Sent       int            `json:"sent"`
	Deliveries []DeliveryJSON `json:"deliveries"`
}

// ToReportJSON converts a report for JSON output.
func ToReportJSON(r notify.Report) ReportJSON {
	out := ReportJSON{Message: r.Message, Sent: r.Sent(), Deliveries: make([]DeliveryJSON, len(r.Deliveries))}
	for i, d := range r.Deliveries {
		out.Deliveries[i] = DeliveryJSON{To: d.To, Sent: d.Err == nil}
		if d.Err != nil {
			out.Deliveries[i].Error = d.Err.Error()
		}
	}
	return out
}
