package notify

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// ErrUnknownChannel is returned when a channel name matches no notifier kind.
var ErrUnknownChannel = errors.New("unknown notification channel")

// ErrMissingAddress is returned when the email channel is selected without a
// destination address.
var ErrMissingAddress = errors.New("email channel requires an address")

// Notifier delivers a single reminder message.
type Notifier interface {
	Send(msg string) error
}

// Kind enumerates the notifier variants. Dispatch is an explicit switch so
// adding a channel (SMS, push) means adding a constant and a case, without
// touching call sites.
type Kind int

const (
	KindConsole Kind = iota
	KindEmail
)

// ParseKind maps a channel name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "console":
		return KindConsole, nil
	case "email":
		return KindEmail, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownChannel)
	}
}

// New builds the notifier for a channel name. The address is only consulted
// for the email channel, where it is required.
func New(name, address string) (Notifier, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindConsole:
		return &Console{}, nil
	case KindEmail:
		if address == "" {
			return nil, ErrMissingAddress
		}
		return &Email{Address: address}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownChannel)
	}
}

// Console writes the message to standard output.
type Console struct {
	Out io.Writer // defaults to os.Stdout
}

func (c *Console) Send(msg string) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, msg); err != nil {
		return fmt.Errorf("console notify: %w", err)
	}
	return nil
}

// Email formats the message as an outgoing mail and prints it. No network
// delivery happens; real SMTP transport is a future channel.
type Email struct {
	Address string
	Out     io.Writer // defaults to os.Stdout
}

func (e *Email) Send(msg string) error {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out,
		"[simulated email]\nTo: %s\nSubject: Birthday reminder\nMessage-ID: <%s@birthday.local>\n\n%s\n",
		e.Address, uuid.NewString(), msg)
	if err != nil {
		return fmt.Errorf("email notify: %w", err)
	}
	return nil
}
