package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/ui/theme"
)

// BinaryChoice renders one statement of a survey page with its true/false
// markers. It holds display state only; the answer itself lives with the
// caller.
type BinaryChoice struct {
	Number   int // position within the whole survey, 1-based
	Text     string
	Answered bool
	Value    bool
	Focused  bool
}

// View renders the statement as a single row.
func (c BinaryChoice) View() string {
	prefix := "  "
	if c.Focused {
		prefix = "▸ "
	}

	label := fmt.Sprintf("%s%2d. %s", prefix, c.Number, c.Text)
	switch {
	case c.Focused:
		label = theme.Selected.Render(label)
	case c.Answered:
		label = theme.Unselected.Render(label)
	default:
		label = theme.Unanswered.Render(label)
	}

	trueMark, falseMark := "( )", "( )"
	if c.Answered {
		if c.Value {
			trueMark = "(●)"
		} else {
			falseMark = "(●)"
		}
	}

	markStyle := func(chosen bool) lipgloss.Style {
		if !c.Answered {
			if c.Focused {
				return theme.Unselected
			}
			return theme.Unanswered
		}
		if chosen {
			return theme.Answered
		}
		return theme.Unanswered
	}

	options := markStyle(c.Value).Render(trueMark+" true") +
		"   " +
		markStyle(!c.Value).Render(falseMark+" false")

	return label + "   " + options
}
