package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dailylearn/internal/badges"
	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/ui/theme"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned and locked badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		all, _ := cmd.Flags().GetBool("all")

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		earned := engine.EarnedBadges(ctx, student)
		have := make(map[string]bool, len(earned))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Section.Render(fmt.Sprintf("Earned (%d of %d)", len(earned), len(badges.Catalog()))))
		for _, e := range earned {
			have[e.ID] = true
			fmt.Fprintf(out, "  %s %s  %s  %s\n", e.Icon,
				theme.Rarity(e.Rarity).Render(e.Name),
				theme.Hint.Render(e.Rarity.DisplayName()),
				theme.Hint.Render(clock.Date(e.EarnedAt, engine.Clock().Now().Location())))
		}

		streak := engine.StreakCount(ctx, student)
		fmt.Fprintf(out, "\nNext streak milestone: %d days (current %d)\n", badges.NextStreakMilestone(streak), streak)

		if !all {
			return nil
		}
		fmt.Fprintln(out, theme.Section.Render("Locked"))
		for _, b := range badges.Catalog() {
			if have[b.ID] {
				continue
			}
			fmt.Fprintf(out, "  %s %s  %s\n", b.Icon, b.Name, theme.Hint.Render(b.Description))
		}
		return nil
	},
}

func init() {
	badgesCmd.Flags().String("student", "", "Student ID")
	badgesCmd.Flags().Bool("all", false, "Also list badges not yet earned")
	_ = badgesCmd.MarkFlagRequired("student")
}
