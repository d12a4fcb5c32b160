package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dailylearn/internal/report"
	"github.com/abhisek/dailylearn/internal/ui/components"
	"github.com/abhisek/dailylearn/internal/ui/layout"
	"github.com/abhisek/dailylearn/internal/ui/theme"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build a progress report for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		period, _ := cmd.Flags().GetString("period")
		asJSON, _ := cmd.Flags().GetBool("json")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")

		if period != "" && (from != "" || to != "") {
			return errors.New("use --period or --from/--to, not both")
		}

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if period != "" {
			from, to, err = report.Period(period).Bounds(engine.Clock().Now())
			if err != nil {
				return err
			}
		}

		r, err := engine.LocalReport(cmd.Context(), student, from, to)
		if err != nil {
			return err
		}

		if xlsxPath != "" {
			if err := writeXLSX(r, xlsxPath); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, r)
		}
		renderReport(cmd, r)
		if xlsxPath != "" {
			fmt.Fprintln(out, theme.Hint.Render("\nWrote "+xlsxPath))
		}
		return nil
	},
}

func writeXLSX(r *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.ExportXLSX(r, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderReport(cmd *cobra.Command, r *report.Report) {
	out := cmd.OutOrStdout()
	ov := r.Overview

	span := "all time"
	if r.From != "" || r.To != "" {
		span = r.From + " to " + r.To
	}
	fmt.Fprintln(out, layout.RenderHeader(span, ov.TotalPoints, ov.Streak, layout.DefaultWidth))
	fmt.Fprintln(out, layout.KeyValue([][2]string{
		{"Sessions", fmt.Sprintf("%d started, %d completed", ov.TotalSessions, ov.CompletedSessions)},
		{"Score", fmt.Sprintf("%d/%d (%d%%)", ov.TotalScore, ov.MaxScore, ov.Accuracy)},
		{"Time spent", fmt.Sprintf("%d min", ov.TotalTimeSeconds/60)},
		{"Next streak goal", fmt.Sprintf("%d days", ov.NextStreakMilestone)},
	}))

	if len(r.DailyActivity) > 0 {
		fmt.Fprintln(out, theme.Section.Render("Daily activity"))
		for _, d := range r.DailyActivity {
			fmt.Fprintln(out, components.NewProgressBar(d.Date, d.Accuracy, layout.DefaultWidth).View())
		}
	}
	if rows := r.Subjects(); len(rows) > 0 {
		fmt.Fprintln(out, theme.Section.Render("Subjects"))
		for _, row := range rows {
			fmt.Fprintln(out, components.NewProgressBar(row.Subject.DisplayName(), row.Accuracy, layout.DefaultWidth).View())
		}
	}
	if len(r.WeakSubjects) > 0 {
		fmt.Fprintln(out, theme.Section.Render("Needs practice"))
		for _, row := range r.WeakSubjects {
			fmt.Fprintf(out, "  %s %s\n", theme.Label.Render(row.Subject.DisplayName()),
				theme.Accuracy(row.Accuracy).Render(fmt.Sprintf("%d%%", row.Accuracy)))
		}
	}
	if len(r.Badges) > 0 {
		fmt.Fprintln(out, theme.Section.Render("Badges"))
		for _, b := range r.Badges {
			fmt.Fprintf(out, "  %s %s\n", b.Icon, theme.Rarity(b.Rarity).Render(b.Name))
		}
	}
}

func init() {
	reportCmd.Flags().String("student", "", "Student ID")
	reportCmd.Flags().String("from", "", "First day, YYYY-MM-DD (inclusive)")
	reportCmd.Flags().String("to", "", "Last day, YYYY-MM-DD (inclusive)")
	reportCmd.Flags().String("period", "", "Preset range: week, month, term or all")
	reportCmd.Flags().Bool("json", false, "Print the report as JSON")
	reportCmd.Flags().String("xlsx", "", "Also write the report to this .xlsx file")
	_ = reportCmd.MarkFlagRequired("student")
}
