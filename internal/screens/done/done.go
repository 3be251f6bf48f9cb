// Package done shows the closing screen after a successful submission.
package done

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/screen"
	"github.com/abhisek/intake/internal/ui/layout"
	"github.com/abhisek/intake/internal/ui/theme"
)

// DoneScreen confirms the submission and tells the respondent where the
// completion record goes.
type DoneScreen struct {
	name        string
	answered    int
	total       int
	destination string // file path, or empty when the record prints after exit
}

var _ screen.Screen = (*DoneScreen)(nil)
var _ screen.KeyHintProvider = (*DoneScreen)(nil)

// New creates the done screen. name is the respondent's name as submitted;
// destination is the record's file path or empty for terminal output.
func New(name string, answered, total int, destination string) *DoneScreen {
	return &DoneScreen{
		name:        name,
		answered:    answered,
		total:       total,
		destination: destination,
	}
}

func (d *DoneScreen) Init() tea.Cmd {
	return nil
}

func (d *DoneScreen) Title() string {
	return "Done"
}

func (d *DoneScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Close"},
	}
}

func (d *DoneScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "esc":
			return d, tea.Quit
		}
	}
	return d, nil
}

func (d *DoneScreen) View(width, height int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, line string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "✓ Survey complete")
	b.WriteString("\n")

	thanks := "Thank you!"
	if d.name != "" {
		thanks = fmt.Sprintf("Thank you, %s!", d.name)
	}
	center(lipgloss.NewStyle().Foreground(theme.Text), thanks)

	if d.total > 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Statements answered: %d of %d", d.answered, d.total))
	}
	b.WriteString("\n")

	record := "Your answers will be printed when this window closes."
	if d.destination != "" {
		record = fmt.Sprintf("Your answers will be saved to %s.", d.destination)
	}
	center(lipgloss.NewStyle().Foreground(theme.TextDim), record)
	b.WriteString("\n")

	center(theme.Hint, "Press Enter to close.")

	return b.String()
}
