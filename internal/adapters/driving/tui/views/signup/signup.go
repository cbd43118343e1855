// Package signup provides the account registration view for the TUI.
package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

// ErrMissingFields is shown when the form is submitted with an empty field.
var ErrMissingFields = errors.New("all fields are required")

// View is the sign-up screen.
type View struct {
	ctx         context.Context
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	userService driving.UserService

	form    *input.Form
	err     error
	loading bool
	width   int
	height  int
}

// NewView creates a new sign-up view.
func NewView(s *styles.Styles, userService driving.UserService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:         context.Background(),
		styles:      s,
		keymap:      keymap.DefaultKeyMap(),
		userService: userService,
		form: input.NewForm(
			input.NewField(s, "Email", "you@example.com", false),
			input.NewField(s, "Password", "", true),
			input.NewField(s, "Confirm", "repeat password", true),
		),
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init focuses the email field.
func (v *View) Init() tea.Cmd {
	return v.form.FocusIndex(fieldEmail)
}

// Reset clears the form.
func (v *View) Reset() {
	v.form.Reset()
	v.err = nil
	v.loading = false
}

// Update handles messages for the sign-up view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.SignedUp:
		v.loading = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.loading {
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back), keymap.Matches(key, v.keymap.SwitchForm):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSignIn} }
	case keymap.Matches(key, v.keymap.NextField):
		return v, v.form.Next()
	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.form.Prev()
	case keymap.Matches(key, v.keymap.Submit):
		if !v.form.Last() {
			return v, v.form.Next()
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	email := strings.TrimSpace(v.form.Value(fieldEmail))
	password := v.form.Value(fieldPassword)
	confirm := v.form.Value(fieldConfirm)

	switch {
	case email == "" || password == "" || confirm == "":
		v.err = ErrMissingFields
		return nil
	case password != confirm:
		v.err = domain.ErrPasswordMismatch
		v.form.SetValue(fieldConfirm, "")
		return v.form.FocusIndex(fieldConfirm)
	case v.userService == nil:
		v.err = domain.ErrNotImplemented
		return nil
	}

	v.loading = true
	v.err = nil
	ctx, users := v.ctx, v.userService
	return func() tea.Msg {
		existing, err := users.Get(ctx, email)
		if err != nil {
			return messages.SignedUp{Email: email, Err: err}
		}
		if existing != nil {
			return messages.SignedUp{Email: email, Err: fmt.Errorf("user %s already exists: %w", email, domain.ErrDuplicateEmail)}
		}
		if err := users.Register(ctx, email, password); err != nil {
			return messages.SignedUp{Email: email, Err: err}
		}
		return messages.SignedUp{Email: email}
	}
}

// View renders the sign-up screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Shopdesk"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Create an account"))
	b.WriteString("\n\n")

	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Creating account..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[tab] Next field  [enter] Sign up  [esc] Back to sign in"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.form.SetWidth(width)
}

// Err returns the last error shown by the view.
func (v *View) Err() error {
	return v.err
}
