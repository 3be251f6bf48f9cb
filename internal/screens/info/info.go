// Package info presents the closing form: the respondent details that
// must be filled before the survey can be submitted.
package info

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/router"
	"github.com/abhisek/intake/internal/screen"
	"github.com/abhisek/intake/internal/screens/done"
	"github.com/abhisek/intake/internal/survey"
	"github.com/abhisek/intake/internal/ui/components"
	"github.com/abhisek/intake/internal/ui/layout"
	"github.com/abhisek/intake/internal/ui/theme"
)

const missingNotice = "Please fill in the marked fields"

// InfoScreen implements screen.Screen for the respondent form.
type InfoScreen struct {
	flow        *survey.Flow
	destination string
	backFactory func() screen.Screen
	fields      []components.FormField
	submit      components.Button
	focus       int // index into fields; len(fields) is the submit button
	notice      string
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates the info form over the flow. destination is where the
// completion record goes, shown after submission; backFactory produces the
// screen shown when the respondent steps back to the question pages.
func New(flow *survey.Flow, destination string, backFactory func() screen.Screen) *InfoScreen {
	s := &InfoScreen{
		flow:        flow,
		destination: destination,
		backFactory: backFactory,
	}

	s.fields = []components.FormField{
		components.NewFormField("Name  ", "your name", false, 40),
		components.NewFormField("Age   ", "your age", true, 3),
		components.NewFormField("School", "your school", false, 60),
		components.NewFormField("Grade ", "your grade or class", false, 20),
	}
	for i, field := range survey.AllInfoFields() {
		s.fields[i].SetValue(flow.InfoValue(field))
	}

	s.submit = components.NewButton("Submit answers", false, s.trySubmit)
	return s
}

func (s *InfoScreen) Init() tea.Cmd {
	return s.fields[0].Focus()
}

func (s *InfoScreen) Title() string {
	return "About you"
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "Enter", Description: "Next / Submit"},
	}
	if s.flow.CanGoPrev() {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back to questions"})
	}
	return hints
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, s.forwardToFocused(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s.back()

	case "tab", "down":
		return s, s.setFocus(s.focus + 1)

	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)

	case "enter":
		if s.focus < len(s.fields) {
			return s, s.setFocus(s.focus + 1)
		}
		var cmd tea.Cmd
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	return s, s.forwardToFocused(msg)
}

// forwardToFocused routes a message to the focused field and mirrors the
// field's value into the flow.
func (s *InfoScreen) forwardToFocused(msg tea.Msg) tea.Cmd {
	if s.focus >= len(s.fields) {
		return nil
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)

	value := s.fields[s.focus].Value()
	s.flow.SetInfo(survey.AllInfoFields()[s.focus], value)
	if s.fields[s.focus].Missing && strings.TrimSpace(value) != "" {
		s.fields[s.focus].Missing = false
	}
	return cmd
}

// setFocus moves keyboard focus, cycling through the fields and the
// submit button.
func (s *InfoScreen) setFocus(target int) tea.Cmd {
	total := len(s.fields) + 1
	target = ((target % total) + total) % total

	if s.focus < len(s.fields) {
		s.fields[s.focus].Blur()
	}
	s.focus = target
	s.submit.Active = s.focus == len(s.fields)

	if s.focus < len(s.fields) {
		return s.fields[s.focus].Focus()
	}
	return nil
}

// back returns to the last question page. On a survey with no questions
// there is nowhere to go back to.
func (s *InfoScreen) back() (screen.Screen, tea.Cmd) {
	if !s.flow.Prev() {
		return s, nil
	}
	backScreen := s.backFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: backScreen}
	}
}

// trySubmit finalizes the survey. A refused submit marks the fields that
// still need values.
func (s *InfoScreen) trySubmit() tea.Cmd {
	if s.flow.Submit() {
		name := strings.TrimSpace(s.flow.InfoValue(survey.FieldName))
		doneScreen := done.New(name, s.flow.AnsweredCount(), s.flow.QuestionCount(), s.destination)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: doneScreen}
		}
	}

	missing := s.flow.MissingInfo()
	for i, field := range survey.AllInfoFields() {
		s.fields[i].Missing = false
		for _, m := range missing {
			if m == field {
				s.fields[i].Missing = true
			}
		}
	}
	s.notice = missingNotice
	return nil
}

func (s *InfoScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Almost done!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Tell us who you are. These details are saved with your answers."))
	b.WriteString("\n\n")

	for i := range s.fields {
		b.WriteString("  " + s.fields[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n  " + s.submit.View())
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	}

	return b.String()
}
