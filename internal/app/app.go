package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/router"
	"github.com/abhisek/intake/internal/screen"
	"github.com/abhisek/intake/internal/screens/info"
	"github.com/abhisek/intake/internal/screens/questions"
	"github.com/abhisek/intake/internal/screens/welcome"
	"github.com/abhisek/intake/internal/survey"
	"github.com/abhisek/intake/internal/ui/layout"
)

// Options configures a survey run.
type Options struct {
	Title       string
	Set         *survey.Set
	PageSize    int
	Destination string // where the completion record goes; empty means stdout
	OnComplete  func(survey.Result)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	flow   *survey.Flow
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(opts Options) (AppModel, error) {
	flow, err := survey.NewFlow(opts.Set, opts.PageSize, opts.OnComplete)
	if err != nil {
		return AppModel{}, err
	}

	dest := opts.Destination
	entry := func() screen.Screen {
		if flow.OnInfoStep() {
			return info.New(flow, dest, func() screen.Screen {
				return questions.New(flow, dest)
			})
		}
		return questions.New(flow, dest)
	}

	welcomeScreen := welcome.New(opts.Title, flow.QuestionCount(), flow.TotalPages(), entry)
	return AppModel{
		flow:   flow,
		router: router.New(welcomeScreen),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc stays with the screens: the question pages confirm before
		// quitting and the info form treats it as back.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.flow.AnsweredCount(), m.flow.QuestionCount(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the respondent
// finishes or quits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
