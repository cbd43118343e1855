// Package products provides the signed-in product manager view for the TUI.
package products

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
)

// View lists the current user's products and dispatches edits.
type View struct {
	ctx            context.Context
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	sessionService driving.SessionService
	productService driving.ProductService

	owner   string
	list    *list.ProductList
	status  *status.Bar
	pending *domain.Product
	loading bool
	width   int
	height  int
}

// NewView creates a new products view.
func NewView(
	s *styles.Styles,
	sessionService driving.SessionService,
	productService driving.ProductService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s)
	bar.SetHints(km.ListHelp())

	return &View{
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		sessionService: sessionService,
		productService: productService,
		list:           list.NewProductList(s),
		status:         bar,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// SetOwner sets whose products are listed and clears the old list.
func (v *View) SetOwner(email string) {
	if email != v.owner {
		v.list.SetProducts(nil)
	}
	v.owner = email
	v.pending = nil
	v.status.SetUser(email)
	v.status.Clear()
}

// Owner returns the email whose products are listed.
func (v *View) Owner() string {
	return v.owner
}

// Init loads the owner's products.
func (v *View) Init() tea.Cmd {
	return v.loadProducts()
}

// SetInfo shows an outcome in the status bar.
func (v *View) SetInfo(message string) {
	v.status.SetInfo(message)
}

func (v *View) loadProducts() tea.Cmd {
	if v.productService == nil {
		return func() tea.Msg {
			return messages.ProductsLoaded{Err: domain.ErrNotImplemented}
		}
	}
	v.loading = true
	ctx, products, owner := v.ctx, v.productService, v.owner
	return func() tea.Msg {
		items, err := products.ListByOwner(ctx, owner)
		return messages.ProductsLoaded{Products: items, Err: err}
	}
}

func (v *View) deleteProduct(p domain.Product) tea.Cmd {
	ctx, products, owner := v.ctx, v.productService, v.owner
	return func() tea.Msg {
		affected, err := products.Delete(ctx, p.ID, owner)
		return messages.ProductDeleted{ID: p.ID, Affected: affected, Err: err}
	}
}

func (v *View) signOut() tea.Cmd {
	ctx, sessions := v.ctx, v.sessionService
	return func() tea.Msg {
		if sessions == nil {
			return messages.SignedOut{Err: domain.ErrNotImplemented}
		}
		return messages.SignedOut{Err: sessions.SignOut(ctx)}
	}
}

// Update handles messages for the products view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ProductsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.list.SetProducts(msg.Products)
		return v, nil

	case messages.ProductDeleted:
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		if msg.Affected == 0 {
			v.status.SetError(fmt.Errorf("product %d is not yours to delete", msg.ID))
		} else {
			v.status.SetInfo(fmt.Sprintf("Deleted product %d", msg.ID))
		}
		return v, v.loadProducts()

	case messages.SignedOut:
		if msg.Err != nil {
			v.status.SetError(msg.Err)
		}
		return v, nil
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.pending != nil {
		p := *v.pending
		switch {
		case keymap.Matches(key, v.keymap.Yes):
			v.pending = nil
			v.status.SetBusy()
			v.status.SetHints(v.keymap.ListHelp())
			return v, v.deleteProduct(p)
		case keymap.Matches(key, v.keymap.No):
			v.pending = nil
			v.status.Clear()
			v.status.SetHints(v.keymap.ListHelp())
		}
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(key, v.keymap.Add):
		return v, func() tea.Msg { return messages.EditProduct{} }
	case keymap.Matches(key, v.keymap.Edit):
		if p := v.list.SelectedProduct(); p != nil {
			edit := *p
			return v, func() tea.Msg { return messages.EditProduct{Product: &edit} }
		}
	case keymap.Matches(key, v.keymap.Delete):
		if p := v.list.SelectedProduct(); p != nil {
			pending := *p
			v.pending = &pending
			v.status.SetConfirm(fmt.Sprintf("Delete %q? (y/n)", p.Name))
			v.status.SetHints(v.keymap.ConfirmHelp())
		}
	case keymap.Matches(key, v.keymap.Refresh):
		v.status.Clear()
		return v, v.loadProducts()
	case keymap.Matches(key, v.keymap.Logout):
		return v, v.signOut()
	default:
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

// View renders the product manager.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Shopdesk"))
	b.WriteString(v.styles.Muted.Render("  " + v.owner))
	b.WriteString("\n\n")

	if v.loading && v.list.Count() == 0 {
		b.WriteString(v.styles.Muted.Render("Loading products..."))
	} else {
		b.WriteString(v.list.View())
	}
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-4)
	v.status.SetWidth(width)
}

// Products returns the listed products.
func (v *View) Products() []domain.Product {
	return v.list.Products()
}

// Confirming reports whether a delete is awaiting confirmation.
func (v *View) Confirming() bool {
	return v.pending != nil
}

// Status returns the status bar state and message.
func (v *View) Status() (status.State, string) {
	return v.status.State(), v.status.Message()
}
