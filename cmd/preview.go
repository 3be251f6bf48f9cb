package cmd

import (
	"fmt"

	"github.com/abhisek/intake/internal/survey"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the paginated question plan without running the TUI",
	Long: `Show how the survey's questions split into pages.

Useful for checking a definition file before handing it to respondents:
the same pagination rules the session uses decide the page boundaries.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	def, err := resolveDefinition(cmd)
	if err != nil {
		return fmt.Errorf("load survey: %w", err)
	}
	set, err := def.Set()
	if err != nil {
		return fmt.Errorf("load survey: %w", err)
	}
	pageSize, err := resolvePageSize(cmd, def)
	if err != nil {
		return err
	}

	questions := set.Questions()
	pages := survey.TotalPages(len(questions), pageSize)

	fmt.Println(def.Title)
	fmt.Printf("%d questions, %d per page, %d pages\n", len(questions), pageSize, pages)

	if pages == 0 {
		fmt.Println("\nNo question pages; the session starts on the respondent form.")
		return nil
	}

	for page := 0; page < pages; page++ {
		start, end, err := survey.PageBounds(page, len(questions), pageSize)
		if err != nil {
			return err
		}

		fmt.Printf("\n── Page %d/%d (questions %d-%d) ──\n", page+1, pages, start+1, end)
		for _, q := range questions[start:end] {
			fmt.Printf("  %3d. %s\n", q.ID, q.Text)
		}
	}
	return nil
}
