package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/intake/internal/app"
	"github.com/abhisek/intake/internal/report"
	"github.com/abhisek/intake/internal/survey"
	"github.com/spf13/cobra"
)

// runApp loads the survey definition and launches the TUI. The completion
// record is written after the program exits, once the terminal is back to
// normal, so it can land on stdout.
func runApp(cmd *cobra.Command) error {
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
	outPath := resolveOutPath(cmd)

	startedAt := time.Now()
	var rec *report.Record
	opts := app.Options{
		Title:       def.Title,
		Set:         set,
		PageSize:    pageSize,
		Destination: outPath,
		OnComplete: func(result survey.Result) {
			r := report.Build(def.Title, set, result, startedAt, time.Now())
			rec = &r
		},
	}

	if err := app.Run(opts); err != nil {
		return err
	}

	if rec == nil {
		fmt.Fprintln(os.Stderr, "Closed without submitting; nothing was recorded.")
		return nil
	}
	if outPath != "" {
		if err := report.SaveJSON(outPath, *rec); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved completion record to", outPath)
		return nil
	}
	return report.WriteJSON(os.Stdout, *rec)
}
