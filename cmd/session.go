package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/dailylearn/internal/app"
	"github.com/abhisek/dailylearn/internal/ui/theme"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start or complete a daily set attempt",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start today's set and create a learning record",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		name, _ := cmd.Flags().GetString("name")
		grade, _ := cmd.Flags().GetInt("grade")
		semester, _ := cmd.Flags().GetInt("semester")
		class, _ := cmd.Flags().GetString("class")

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		in := app.StartInput{StudentID: student, Name: name, Grade: grade, Semester: semester}
		if class != "" {
			in.ClassID = &class
		}
		attempt, err := engine.StartSession(cmd.Context(), in)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderSet(out, attempt.Set)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Record: %s\n", theme.Value.Render(attempt.Record.ID))
		fmt.Fprintln(out, theme.Hint.Render("Finish with: dailylearn session complete "+attempt.Record.ID+" --answers answers.yaml"))
		return nil
	},
}

// answerFile is the YAML document read by "session complete".
type answerFile struct {
	EmotionAfter string        `yaml:"emotion_after"`
	Answers      []answerEntry `yaml:"answers"`
}

type answerEntry struct {
	QuestionID string `yaml:"question_id"`
	Answer     string `yaml:"answer"`
	Seconds    int    `yaml:"seconds"`
}

func readAnswerFile(path string) (*answerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var f answerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return &f, nil
}

var sessionCompleteCmd = &cobra.Command{
	Use:   "complete RECORD_ID",
	Short: "Submit answers for a started set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		if path == "" {
			return errors.New("--answers is required")
		}
		file, err := readAnswerFile(path)
		if err != nil {
			return err
		}

		engine, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		attempt, err := engine.ResumeSession(ctx, args[0])
		if err != nil {
			return err
		}
		for _, a := range file.Answers {
			if _, err := attempt.State.Answer(a.QuestionID, a.Answer, a.Seconds); err != nil {
				return err
			}
		}

		var emotionAfter *string
		if file.EmotionAfter != "" {
			emotionAfter = &file.EmotionAfter
		}
		done, err := engine.CompleteSession(ctx, attempt.State, emotionAfter)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if done == nil {
			fmt.Fprintln(out, theme.Warn.Render("The learning record no longer exists. Nothing was saved."))
			return nil
		}

		renderSummary(out, done.Summary)
		fmt.Fprintf(out, "\nScore %s  streak %d  total points %d\n",
			theme.Value.Render(fmt.Sprintf("%d/%d", done.Record.TotalScore, done.Record.MaxScore)),
			done.Profile.StreakCount, done.Profile.TotalPoints)
		for _, b := range done.NewBadges {
			fmt.Fprintf(out, "New badge: %s %s\n", b.Icon, theme.Rarity(b.Rarity).Render(b.Name))
		}
		return nil
	},
}

func init() {
	sessionStartCmd.Flags().String("student", "", "Student ID")
	sessionStartCmd.Flags().String("name", "", "Student display name")
	sessionStartCmd.Flags().String("class", "", "Optional class ID")
	addLevelFlags(sessionStartCmd)
	_ = sessionStartCmd.MarkFlagRequired("student")

	sessionCompleteCmd.Flags().String("answers", "", "YAML file with question_id/answer/seconds entries and emotion_after")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionCompleteCmd)
}
