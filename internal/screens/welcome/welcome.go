// Package welcome shows the survey's opening screen: what the survey is,
// how long it is, and how to begin.
package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/router"
	"github.com/abhisek/intake/internal/screen"
	"github.com/abhisek/intake/internal/ui/components"
	"github.com/abhisek/intake/internal/ui/layout"
	"github.com/abhisek/intake/internal/ui/theme"
)

// WelcomeScreen introduces the survey and hands off to the first survey screen.
type WelcomeScreen struct {
	surveyTitle   string
	questionCount int
	pageCount     int
	entryFactory  func() screen.Screen
	menu          components.Menu
	transitioned  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// entryFactory when the respondent begins.
func New(surveyTitle string, questionCount, pageCount int, entryFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		surveyTitle:   surveyTitle,
		questionCount: questionCount,
		pageCount:     pageCount,
		entryFactory:  entryFactory,
	}
	w.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Begin survey",
			Hint:   "answers are not graded",
			Action: w.begin,
		},
		{
			Label:  "Quit",
			Hint:   "nothing is recorded",
			Action: func() tea.Cmd { return tea.Quit },
		},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "esc":
			return w, tea.Quit
		}
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

// begin hands off to the entry screen exactly once.
func (w *WelcomeScreen) begin() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	entry := w.entryFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: entry}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width, height))
	sections = append(sections, "")

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(w.surveyTitle)
	sections = append(sections, title)

	pageWord := "pages"
	if w.pageCount == 1 {
		pageWord = "page"
	}
	stats := theme.Subtitle.Render(fmt.Sprintf(
		"%d true/false statements · %d %s · a few minutes",
		w.questionCount, w.pageCount, pageWord,
	))
	sections = append(sections, stats)
	sections = append(sections, "")

	about := theme.Hint.Render("Read each statement and answer true or false.\nThere are no right or wrong answers.")
	sections = append(sections, about)
	sections = append(sections, "")

	sections = append(sections, w.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
