// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/styles"
)

// State represents what the status bar reports on its left side.
type State string

const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateInfo    State = "info"
	StateError   State = "error"
	StateConfirm State = "confirm"
)

// Bar shows the signed-in user, the latest outcome and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	state   State
	message string
	user    string
	hints   []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		styles: s,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	var who string
	if b.user != "" {
		who = b.styles.Normal.Render(b.user) + b.styles.Muted.Render(" │ ")
	}

	switch b.state {
	case StateBusy:
		return who + b.styles.Muted.Render("Working...")
	case StateInfo:
		return who + b.styles.Success.Render(b.message)
	case StateConfirm:
		return who + b.styles.Warning.Render(b.message)
	case StateError:
		if b.message != "" {
			return who + b.styles.Error.Render(fmt.Sprintf("Error: %s", b.message))
		}
		return who + b.styles.Error.Render("Error")
	case StateReady:
	}
	return who + b.styles.Muted.Render("Ready")
}

func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.hints))
	for _, binding := range b.hints {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Help.Render(strings.Join(hints, " | "))
}

// SetInfo reports a successful outcome.
func (b *Bar) SetInfo(message string) {
	b.state = StateInfo
	b.message = message
}

// SetError reports a failure.
func (b *Bar) SetError(err error) {
	b.state = StateError
	b.message = ""
	if err != nil {
		b.message = err.Error()
	}
}

// SetConfirm shows a question awaiting a yes or no.
func (b *Bar) SetConfirm(question string) {
	b.state = StateConfirm
	b.message = question
}

// SetBusy marks an operation in flight.
func (b *Bar) SetBusy() {
	b.state = StateBusy
	b.message = ""
}

// SetUser sets the signed-in email shown on the left. Empty hides it.
func (b *Bar) SetUser(email string) {
	b.user = email
}

// SetHints sets the keybindings shown on the right.
func (b *Bar) SetHints(hints []key.Binding) {
	b.hints = hints
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to its ready state. The user is kept.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
}
