package cmd

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Show today's daily set for a grade and semester",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		semester, _ := cmd.Flags().GetInt("semester")
		asJSON, _ := cmd.Flags().GetBool("json")

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		set, err := engine.GenerateDailySet(cmd.Context(), grade, semester)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), set)
		}
		renderSet(cmd.OutOrStdout(), set)
		return nil
	},
}

func init() {
	addLevelFlags(generateCmd)
	generateCmd.Flags().Bool("json", false, "Print the set as JSON")
}

// addLevelFlags registers --grade and --semester.
func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().Int("grade", 3, "Grade level (1-6)")
	cmd.Flags().Int("semester", 1, "Semester (1 or 2)")
}
