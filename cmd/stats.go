package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/ui/components"
	"github.com/abhisek/dailylearn/internal/ui/layout"
	"github.com/abhisek/dailylearn/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, points and per-subject accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		streak := engine.StreakCount(ctx, student)
		points := engine.TotalPoints(ctx, student)
		stats := engine.SubjectStats(ctx, student)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, layout.RenderHeader(student, points, streak, layout.DefaultWidth))
		fmt.Fprintln(out, layout.KeyValue([][2]string{
			{"Days completed", fmt.Sprint(len(engine.CompletedDates(ctx, student)))},
			{"Current streak", fmt.Sprintf("%d days", streak)},
			{"Total points", fmt.Sprint(points)},
		}))

		if len(stats) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("\nNo answers recorded yet."))
			return nil
		}
		fmt.Fprintln(out, theme.Section.Render("Subjects"))
		for _, s := range curriculum.AllSubjects() {
			st, ok := stats[s]
			if !ok {
				continue
			}
			bar := components.NewProgressBar(s.DisplayName(), st.Accuracy, layout.DefaultWidth)
			fmt.Fprintf(out, "%s %s\n", bar.View(), theme.Hint.Render(fmt.Sprintf("%d/%d, %ds avg", st.Correct, st.Total, st.AvgTime)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "", "Student ID")
	_ = statsCmd.MarkFlagRequired("student")
}
