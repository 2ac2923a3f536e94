// Package notify is the user-facing side channel for transient
// success/failure messages, independent of returned errors.
package notify

import (
	"io"

	"github.com/fatih/color"
)

// Notifier emits transient user-facing notifications.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// Terminal renders notifications as colored lines.
type Terminal struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

var _ Notifier = (*Terminal)(nil)

// NewTerminal creates a Terminal notifier writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

func (t *Terminal) Success(msg string) {
	t.success.Fprintln(t.out, msg)
}

func (t *Terminal) Failure(msg string) {
	t.failure.Fprintln(t.out, msg)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Failure(string) {}
