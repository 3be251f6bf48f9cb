// Package questions presents the survey pages: one true/false statement
// list per page, with completion-gated forward navigation.
package questions

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intake/internal/router"
	"github.com/abhisek/intake/internal/screen"
	"github.com/abhisek/intake/internal/screens/info"
	"github.com/abhisek/intake/internal/survey"
	"github.com/abhisek/intake/internal/ui/layout"
)

const incompleteNotice = "Answer every statement on this page to continue"

// QuestionsScreen implements screen.Screen for the question pages.
type QuestionsScreen struct {
	flow        *survey.Flow
	destination string
	cursor      int
	notice      string
	quitConfirm bool
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates the questions screen over an in-progress flow. destination
// is carried through to the screens after the last page.
func New(flow *survey.Flow, destination string) *QuestionsScreen {
	return &QuestionsScreen{flow: flow, destination: destination}
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionsScreen) Title() string {
	return "Questions"
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave survey"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "T/F", Description: "Answer"},
		{Key: "Enter", Description: "Continue"},
		{Key: "B", Description: "Back"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	return s.handleKey(kmsg)
}

func (s *QuestionsScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	s.notice = ""

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.cursor < len(s.flow.PageQuestions())-1 {
			s.cursor++
		}
		return s, nil

	case "t", "y", "1":
		return s.answer(survey.True)

	case "f", "n", "2":
		return s.answer(survey.False)

	case "enter":
		return s.nextPage()

	case "b", "left", "h":
		if s.flow.Prev() {
			s.cursor = 0
		}
		return s, nil
	}

	return s, nil
}

// answer records a value for the focused statement and moves the cursor to
// the next one on the page.
func (s *QuestionsScreen) answer(value survey.Answer) (screen.Screen, tea.Cmd) {
	page := s.flow.PageQuestions()
	if s.cursor >= len(page) {
		return s, nil
	}

	if err := s.flow.SetAnswer(page[s.cursor].ID, value); err != nil {
		s.notice = err.Error()
		return s, nil
	}

	if s.cursor < len(page)-1 {
		s.cursor++
	}
	return s, nil
}

// nextPage advances the flow. The move is refused while the page has
// unanswered statements; stepping past the last page hands off to the
// info form.
func (s *QuestionsScreen) nextPage() (screen.Screen, tea.Cmd) {
	if !s.flow.Next() {
		s.notice = incompleteNotice
		return s, nil
	}

	if s.flow.OnInfoStep() {
		flow, dest := s.flow, s.destination
		infoScreen := info.New(flow, dest, func() screen.Screen { return New(flow, dest) })
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: infoScreen}
		}
	}

	s.cursor = 0
	return s, nil
}
