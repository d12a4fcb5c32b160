package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dailylearn/internal/dailyset"
)

func TestReadAnswerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	doc := `emotion_after: happy
answers:
  - question_id: set-g3-s1-d289-q1
    answer: happy
    seconds: 4
  - question_id: set-g3-s1-d289-q3
    answer: "12"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := readAnswerFile(path)
	require.NoError(t, err)
	assert.Equal(t, "happy", f.EmotionAfter)
	require.Len(t, f.Answers, 2)
	assert.Equal(t, answerEntry{QuestionID: "set-g3-s1-d289-q1", Answer: "happy", Seconds: 4}, f.Answers[0])
	assert.Equal(t, "12", f.Answers[1].Answer)
	assert.Zero(t, f.Answers[1].Seconds)
}

func TestReadAnswerFile_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := readAnswerFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("answers: [unclosed"), 0o644))
	_, err = readAnswerFile(bad)
	assert.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--store", "memory", "--tz", "UTC", "--grade", "2", "--semester", "2", "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var set dailyset.DailySetWithQuestions
	require.NoError(t, json.Unmarshal(out.Bytes(), &set))
	assert.Equal(t, 2, set.Set.Grade)
	assert.Equal(t, 2, set.Set.Semester)
	assert.Equal(t, 13, set.Set.TotalQuestions)
	assert.Len(t, set.Questions, 13)
	assert.False(t, set.UsingFallbackCorpus)
}
