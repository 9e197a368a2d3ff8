package notify

import (
	"fmt"
	"io"
)

// Notifier receives one user-facing message per catalog operation outcome,
// the terminal stand-in for the storefront's toast popups. Notifications are
// purely a display concern: callers must branch on an operation's return
// values, never on whether a notification fired.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ConsoleNotifier writes notifications to a writer, one line each.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a ConsoleNotifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Success reports a successful operation.
func (n *ConsoleNotifier) Success(message string) {
	fmt.Fprintf(n.out, "ok: %s\n", message)
}

// Error reports a failed operation.
func (n *ConsoleNotifier) Error(message string) {
	fmt.Fprintf(n.out, "error: %s\n", message)
}

// NopNotifier discards all notifications. Used in tests and when the
// storefront runs in quiet mode.
type NopNotifier struct{}

// NewNopNotifier creates a NopNotifier.
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// Success discards the message.
func (n *NopNotifier) Success(message string) {}

// Error discards the message.
func (n *NopNotifier) Error(message string) {}
