package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/ui/theme"
)

// FormField wraps bubbles/textinput as a labeled form field.
type FormField struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	Missing     bool
}

// NewFormField creates a styled form field.
func NewFormField(label, placeholder string, numericOnly bool, charLimit int) FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return FormField{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (f FormField) Init() tea.Cmd {
	return nil
}

// Update handles messages. Numeric-only fields swallow non-digit runes.
func (f FormField) Update(msg tea.Msg) (FormField, tea.Cmd) {
	if f.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label and the input on one row. Fields flagged as
// missing carry a marker so the respondent can see what blocks submission.
func (f FormField) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Model.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	row := labelStyle.Render(f.Label) + "  " + f.Model.View()
	if f.Missing {
		row += " " + theme.Warning.Render("required")
	}
	return row
}

// Value returns the current input value.
func (f FormField) Value() string {
	return f.Model.Value()
}

// SetValue replaces the input value, used to restore a previously
// entered field.
func (f *FormField) SetValue(v string) {
	f.Model.SetValue(v)
}

// Focus gives the field keyboard focus.
func (f *FormField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *FormField) Blur() {
	f.Model.Blur()
}
