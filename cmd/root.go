package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/intake/internal/surveyfile"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Terminal survey runner",
	Long:  "Intake — terminal app that walks a respondent through a paged true/false questionnaire and records the answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to a survey definition file (overrides INTAKE_SURVEY env var)")
	rootCmd.PersistentFlags().Int("page-size", 0, "Questions per page (overrides the definition's page_size)")
	rootCmd.Flags().StringP("out", "o", "", "Write the completion record to this file (overrides INTAKE_OUT env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDefinition loads the survey using --file (highest priority), then
// the INTAKE_SURVEY env var, then the questionnaire embedded in the binary.
func resolveDefinition(cmd *cobra.Command) (*surveyfile.Definition, error) {
	if p, _ := cmd.Flags().GetString("file"); p != "" {
		return surveyfile.Load(p)
	}
	if p := os.Getenv("INTAKE_SURVEY"); p != "" {
		return surveyfile.Load(p)
	}
	return surveyfile.Default()
}

// resolvePageSize returns the page size using --page-size (highest
// priority), then the definition's own value or its default.
func resolvePageSize(cmd *cobra.Command, def *surveyfile.Definition) (int, error) {
	if n, _ := cmd.Flags().GetInt("page-size"); n != 0 {
		if n < 0 {
			return 0, fmt.Errorf("page size must be positive, got %d", n)
		}
		return n, nil
	}
	return def.EffectivePageSize(), nil
}

// resolveOutPath returns the record destination: --out flag, then the
// INTAKE_OUT env var. Empty means standard output.
func resolveOutPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("out"); p != "" {
		return p
	}
	return os.Getenv("INTAKE_OUT")
}
