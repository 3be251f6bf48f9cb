package cmd

import (
	"fmt"

	"github.com/abhisek/intake/internal/survey"
	"github.com/abhisek/intake/internal/surveyfile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a survey definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := surveyfile.Load(args[0])
		if err != nil {
			return err
		}

		pageSize := def.EffectivePageSize()
		fmt.Printf("%s: ok\n", args[0])
		fmt.Printf("  title:     %s\n", def.Title)
		fmt.Printf("  questions: %d\n", len(def.Questions))
		fmt.Printf("  page size: %d\n", pageSize)
		fmt.Printf("  pages:     %d\n", survey.TotalPages(len(def.Questions), pageSize))
		return nil
	},
}
