package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Form is an ordered set of fields with a single focused input.
type Form struct {
	fields  []*Field
	focused int
}

// NewForm creates a form and focuses its first field.
func NewForm(fields ...*Field) *Form {
	f := &Form{fields: fields}
	f.FocusIndex(0)
	return f
}

// Update forwards msg to the focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return f, cmd
}

// View renders every field, one per line.
func (f *Form) View() string {
	lines := make([]string, len(f.fields))
	for i, field := range f.fields {
		lines[i] = field.View()
	}
	return strings.Join(lines, "\n")
}

// Next moves focus to the following field, wrapping at the end.
func (f *Form) Next() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusIndex((f.focused + 1) % len(f.fields))
}

// Prev moves focus to the preceding field, wrapping at the start.
func (f *Form) Prev() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusIndex((f.focused - 1 + len(f.fields)) % len(f.fields))
}

// FocusIndex focuses field i and blurs the rest.
func (f *Form) FocusIndex(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	f.focused = i
	var cmd tea.Cmd
	for j, field := range f.fields {
		if j == i {
			cmd = field.Focus()
			continue
		}
		field.Blur()
	}
	return cmd
}

// Focused returns the index of the focused field.
func (f *Form) Focused() int {
	return f.focused
}

// Last reports whether the last field has focus.
func (f *Form) Last() bool {
	return f.focused == len(f.fields)-1
}

// Value returns the value of field i.
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].Value()
}

// SetValue sets the value of field i.
func (f *Form) SetValue(i int, value string) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	f.fields[i].SetValue(value)
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.fields)
}

// SetWidth resizes every field.
func (f *Form) SetWidth(width int) {
	for _, field := range f.fields {
		field.SetWidth(width)
	}
}

// Reset clears every field and focuses the first.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		field.Reset()
	}
	return f.FocusIndex(0)
}
