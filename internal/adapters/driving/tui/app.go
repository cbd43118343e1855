package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/views/productform"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/views/products"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/views/signin"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/views/signup"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	signInView      *signin.View
	signUpView      *signup.View
	productsView    *products.View
	productFormView *productform.View

	// user is the signed-in email, empty when nobody is signed in.
	user string

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		signInView:      signin.NewView(s, ports.Session),
		signUpView:      signup.NewView(s, ports.User),
		productsView:    products.NewView(s, ports.Session, ports.Product),
		productFormView: productform.NewView(s, ports.Product),
		currentView:     messages.ViewSignIn,
	}, nil
}

// WithContext sets the context used for every service call.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.signInView.SetContext(ctx)
	a.signUpView.SetContext(ctx)
	a.productsView.SetContext(ctx)
	a.productFormView.SetContext(ctx)
	return a
}

// Init implements tea.Model. It resumes an existing session if there is one.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("shopdesk"),
		a.signInView.Init(),
		a.resolveSession(),
	)
}

func (a *App) resolveSession() tea.Cmd {
	ctx, sessions := a.ctx, a.ports.Session
	return func() tea.Msg {
		session, err := sessions.Current(ctx)
		if err != nil || session == nil {
			return messages.SessionResolved{Err: err}
		}
		return messages.SessionResolved{Email: session.Email}
	}
}

// showProducts switches to the product manager for email.
func (a *App) showProducts(email string) tea.Cmd {
	a.user = email
	a.productsView.SetOwner(email)
	a.currentView = messages.ViewProducts
	return a.productsView.Init()
}

// showSignIn switches to the sign-in screen.
func (a *App) showSignIn(email, notice string) tea.Cmd {
	a.signInView.Reset(email, notice)
	a.currentView = messages.ViewSignIn
	return a.signInView.Init()
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case messages.SessionResolved:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("tui: reading session: %v", msg.Err)
			return a, nil
		}
		if msg.Email != "" {
			return a, a.showProducts(msg.Email)
		}
		return a, nil

	case messages.SignedIn:
		if msg.Err != nil {
			a.signInView, cmd = a.signInView.Update(msg)
			return a, cmd
		}
		a.signInView, _ = a.signInView.Update(msg)
		return a, a.showProducts(msg.Email)

	case messages.SignedUp:
		if msg.Err != nil {
			a.signUpView, cmd = a.signUpView.Update(msg)
			return a, cmd
		}
		return a, a.showSignIn(msg.Email, fmt.Sprintf("Account created for %s. Sign in to continue.", msg.Email))

	case messages.SignedOut:
		if msg.Err != nil {
			a.productsView, cmd = a.productsView.Update(msg)
			return a, cmd
		}
		a.user = ""
		a.productsView.SetOwner("")
		return a, a.showSignIn("", "Signed out.")

	case messages.ViewChanged:
		switch msg.View {
		case messages.ViewSignIn:
			return a, a.showSignIn("", "")
		case messages.ViewSignUp:
			a.signUpView.Reset()
			a.currentView = messages.ViewSignUp
			return a, a.signUpView.Init()
		case messages.ViewProducts:
			if a.user == "" {
				return a, a.showSignIn("", "")
			}
			return a, a.showProducts(a.user)
		case messages.ViewProductForm:
			return a, a.openForm(nil)
		}
		return a, nil

	case messages.EditProduct:
		return a, a.openForm(&msg)

	case messages.ProductSaved:
		if msg.Err != nil {
			a.productFormView, cmd = a.productFormView.Update(msg)
			return a, cmd
		}
		cmd = a.showProducts(a.user)
		if msg.Created {
			a.productsView.SetInfo(fmt.Sprintf("Added product %d", msg.ID))
		} else {
			a.productsView.SetInfo(fmt.Sprintf("Updated product %d", msg.ID))
		}
		return a, cmd

	case messages.ProductsLoaded, messages.ProductDeleted:
		a.productsView, cmd = a.productsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// openForm shows the product form. A nil edit or edit.Product starts a new product.
func (a *App) openForm(edit *messages.EditProduct) tea.Cmd {
	if a.user == "" {
		return a.showSignIn("", "")
	}
	a.currentView = messages.ViewProductForm
	if edit == nil {
		return a.productFormView.Open(a.user, nil)
	}
	return a.productFormView.Open(a.user, edit.Product)
}

// forward sends msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSignIn:
		a.signInView, cmd = a.signInView.Update(msg)
	case messages.ViewSignUp:
		a.signUpView, cmd = a.signUpView.Update(msg)
	case messages.ViewProducts:
		a.productsView, cmd = a.productsView.Update(msg)
	case messages.ViewProductForm:
		a.productFormView, cmd = a.productFormView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSignUp:
		return a.signUpView.View()
	case messages.ViewProducts:
		return a.productsView.View()
	case messages.ViewProductForm:
		return a.productFormView.View()
	case messages.ViewSignIn:
	}
	return a.signInView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// User returns the signed-in email, or "" when nobody is signed in.
func (a *App) User() string {
	return a.user
}

// Err returns the last application-level error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.signInView.SetDimensions(width, height)
	a.signUpView.SetDimensions(width, height)
	a.productsView.SetDimensions(width, height)
	a.productFormView.SetDimensions(width, height)
}
