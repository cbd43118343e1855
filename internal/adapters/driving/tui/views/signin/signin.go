// Package signin provides the sign-in view for the TUI.
package signin

import (
	"context"
	"errors"
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
)

// ErrMissingCredentials is shown when the form is submitted with an empty field.
var ErrMissingCredentials = errors.New("email and password are required")

// View is the sign-in screen.
type View struct {
	ctx            context.Context
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	sessionService driving.SessionService

	form    *input.Form
	err     error
	notice  string
	loading bool
	width   int
	height  int
}

// NewView creates a new sign-in view.
func NewView(s *styles.Styles, sessionService driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:            context.Background(),
		styles:         s,
		keymap:         keymap.DefaultKeyMap(),
		sessionService: sessionService,
		form: input.NewForm(
			input.NewField(s, "Email", "you@example.com", false),
			input.NewField(s, "Password", "", true),
		),
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init focuses the first empty field.
func (v *View) Init() tea.Cmd {
	if v.form.Value(fieldEmail) != "" {
		return v.form.FocusIndex(fieldPassword)
	}
	return v.form.FocusIndex(fieldEmail)
}

// Reset clears the form. A non-empty email is prefilled and notice is
// shown above the form.
func (v *View) Reset(email, notice string) {
	v.form.Reset()
	v.form.SetValue(fieldEmail, email)
	v.err = nil
	v.notice = notice
	v.loading = false
}

// Update handles messages for the sign-in view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.SignedIn:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			v.form.SetValue(fieldPassword, "")
			return v, v.form.FocusIndex(fieldPassword)
		}
		v.err = nil
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
	case keymap.Matches(key, v.keymap.SwitchForm):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSignUp} }
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
	if email == "" || password == "" {
		v.err = ErrMissingCredentials
		return nil
	}
	if v.sessionService == nil {
		v.err = domain.ErrNotImplemented
		return nil
	}

	v.loading = true
	v.err = nil
	ctx, sessions := v.ctx, v.sessionService
	return func() tea.Msg {
		user, err := sessions.SignIn(ctx, email, password)
		if err != nil {
			return messages.SignedIn{Email: email, Err: err}
		}
		return messages.SignedIn{Email: user.Email}
	}
}

// View renders the sign-in screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Shopdesk"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Sign in"))
	b.WriteString("\n\n")

	if v.notice != "" {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Signing in..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[tab] Next field  [enter] Sign in  [ctrl+n] Create an account  [ctrl+c] Quit"))
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

// Email returns the email currently entered.
func (v *View) Email() string {
	return v.form.Value(fieldEmail)
}
