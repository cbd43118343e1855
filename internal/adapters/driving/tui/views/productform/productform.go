// Package productform provides the add and edit product form for the TUI.
package productform

import (
	"context"
	"fmt"
	"math"
	"strconv"
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
	fieldName = iota
	fieldPrice
	fieldDescription
	fieldCategory
)

// View is the product form. It adds a product when opened without one
// and updates the given product otherwise.
type View struct {
	ctx            context.Context
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	productService driving.ProductService

	form    *input.Form
	owner   string
	editID  int64
	err     error
	loading bool
	width   int
	height  int
}

// NewView creates a new product form view.
func NewView(s *styles.Styles, productService driving.ProductService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:            context.Background(),
		styles:         s,
		keymap:         keymap.DefaultKeyMap(),
		productService: productService,
		form: input.NewForm(
			input.NewField(s, "Name", "", false),
			input.NewField(s, "Price", "0.00", false),
			input.NewField(s, "Description", "", false),
			input.NewField(s, "Category", "", false),
		),
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Open prepares the form for owner. A nil p starts an empty form.
func (v *View) Open(owner string, p *domain.Product) tea.Cmd {
	v.owner = owner
	v.err = nil
	v.loading = false
	v.editID = 0
	cmd := v.form.Reset()

	if p != nil {
		v.editID = p.ID
		v.form.SetValue(fieldName, p.Name)
		v.form.SetValue(fieldPrice, strconv.FormatFloat(p.Price, 'f', -1, 64))
		v.form.SetValue(fieldDescription, p.Description)
		v.form.SetValue(fieldCategory, p.Category)
	}
	return cmd
}

// Editing reports whether the form updates an existing product.
func (v *View) Editing() bool {
	return v.editID != 0
}

// Update handles messages for the product form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ProductSaved:
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
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewProducts} }
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

// product builds a product from the form, requiring every field.
func (v *View) product() (domain.Product, error) {
	p := domain.Product{
		ID:          v.editID,
		Name:        strings.TrimSpace(v.form.Value(fieldName)),
		Description: strings.TrimSpace(v.form.Value(fieldDescription)),
		Category:    strings.TrimSpace(v.form.Value(fieldCategory)),
		OwnerEmail:  v.owner,
	}
	if err := p.Complete(); err != nil {
		return p, err
	}

	raw := strings.TrimSpace(v.form.Value(fieldPrice))
	if raw == "" {
		return p, fmt.Errorf("%w: missing price", domain.ErrInvalidInput)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return p, fmt.Errorf("%w: price %q is not a number", domain.ErrInvalidInput, raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return p, fmt.Errorf("%w: price %q is not a finite number", domain.ErrInvalidInput, raw)
	}
	p.Price = price
	return p, nil
}

func (v *View) submit() tea.Cmd {
	p, err := v.product()
	if err != nil {
		v.err = err
		return nil
	}
	if v.productService == nil {
		v.err = domain.ErrNotImplemented
		return nil
	}

	v.loading = true
	v.err = nil
	ctx, products := v.ctx, v.productService
	if p.ID == 0 {
		return func() tea.Msg {
			id, err := products.Add(ctx, p)
			return messages.ProductSaved{ID: id, Created: true, Affected: 1, Err: err}
		}
	}
	return func() tea.Msg {
		affected, err := products.Update(ctx, p)
		if err == nil && affected == 0 {
			err = fmt.Errorf("product %d is not yours to edit", p.ID)
		}
		return messages.ProductSaved{ID: p.ID, Affected: affected, Err: err}
	}
}

// View renders the product form.
func (v *View) View() string {
	var b strings.Builder

	title := "Add product"
	if v.Editing() {
		title = fmt.Sprintf("Edit product %d", v.editID)
	}
	b.WriteString(v.styles.Title.Render("Shopdesk"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Saving..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[tab] Next field  [enter] Save  [esc] Cancel"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.form.SetWidth(width)
}

// Err returns the last error shown by the form.
func (v *View) Err() error {
	return v.err
}
