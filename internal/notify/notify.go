// Package notify broadcasts the emergency SMS to every stored contact.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"text/template"
	"time"
)

// ErrNoContacts is returned when there is nobody to notify.
var ErrNoContacts = errors.New("no emergency contacts")

// Sender delivers one SMS.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Delivery is the outcome for one contact.
type Delivery struct {
	To  string `json:"to"`
	Err error  `json:"-"`
}

// Report is the outcome of a NotifyAll call.
type Report struct {
	Message    string     `json:"message"`
	Deliveries []Delivery `json:"deliveries"`
}

// Sent returns the number of successful deliveries.
func (r Report) Sent() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the deliveries that errored.
func (r Report) Failed() []Delivery {
	var out []Delivery
	for _, d := range r.Deliveries {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}

// Notifier sends the configured message to a list of contacts.
type Notifier struct {
	sender  Sender
	message *template.Template
	logger  *log.Logger
	now     func() time.Time
}

// messageData is available to the message template.
type messageData struct {
	Time time.Time
}

// New creates a Notifier. message is a text/template with {{.Time}} available.
func New(sender Sender, message string, logger *log.Logger) (*Notifier, error) {
	tmpl, err := template.New("message").Parse(message)
	if err != nil {
		return nil, fmt.Errorf("parsing emergency message: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Notifier{sender: sender, message: tmpl, logger: logger, now: time.Now}, nil
}

// Message renders the message body.
func (n *Notifier) Message() (string, error) {
	var buf bytes.Buffer
	if err := n.message.Execute(&buf, messageData{Time: n.now()}); err != nil {
		return "", fmt.Errorf("rendering emergency message: %w", err)
	}
	return buf.String(), nil
}

// NotifyAll sends the same message to every contact, in order. A failure for
// one contact is logged and recorded; delivery continues with the rest. It
// returns ErrNoContacts without sending anything when contacts is empty.
func (n *Notifier) NotifyAll(ctx context.Context, contacts []string) (Report, error) {
	if len(contacts) == 0 {
		return Report{}, ErrNoContacts
	}

	body, err := n.Message()
	if err != nil {
		return Report{}, err
	}

	report := Report{Message: body, Deliveries: make([]Delivery, 0, len(contacts))}
	for _, to := range contacts {
		err := n.sender.Send(ctx, to, body)
		if err != nil {
			n.logger.Printf("Failed to send message to %s: %v", to, err)
		}
		report.Deliveries = append(report.Deliveries, Delivery{To: to, Err: err})
	}
	return report, nil
}
