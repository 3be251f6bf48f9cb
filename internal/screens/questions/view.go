package questions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/survey"
	"github.com/abhisek/intake/internal/ui/components"
	"github.com/abhisek/intake/internal/ui/theme"
)

func (s *QuestionsScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderPage(width, height)
}

// renderPage renders the current page of statements.
func (s *QuestionsScreen) renderPage(width, height int) string {
	var b strings.Builder

	// Page indicator and overall progress.
	pageLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Page %d of %d", s.flow.Page()+1, s.flow.TotalPages()))

	bar := components.ProgressBar{
		Fraction:  s.flow.Progress(),
		Done:      s.flow.AnsweredCount(),
		Total:     s.flow.QuestionCount(),
		ShowCount: true,
		Width:     28,
	}
	pageRight := bar.View()

	pageLine := pageLeft
	rightPad := width - lipgloss.Width(pageLeft) - lipgloss.Width(pageRight) - 4
	if rightPad > 0 {
		pageLine += strings.Repeat(" ", rightPad) + pageRight
	}

	b.WriteString(pageLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Statement rows.
	page := s.flow.PageQuestions()
	for i, q := range page {
		row := components.BinaryChoice{
			Number:   s.flow.Page()*s.flow.PageSize() + i + 1,
			Text:     q.Text,
			Answered: s.flow.IsAnswered(q.ID),
			Value:    s.flow.AnswerValue(q.ID) == survey.True,
			Focused:  i == s.cursor,
		}
		b.WriteString(row.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Continue hint or incomplete notice.
	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	} else if s.flow.PageComplete() {
		label := "Press Enter for the next page"
		if s.flow.Page() == s.flow.TotalPages()-1 {
			label = "Press Enter to finish up"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(label))
	}

	return b.String()
}

// renderQuitConfirm renders the leave-survey confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the survey?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers will not be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
