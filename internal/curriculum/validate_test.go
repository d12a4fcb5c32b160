package curriculum

import (
	"strings"
	"testing"
)

func TestValidateCorpus_DetectsDuplicateID(t *testing.T) {
	c := &Corpus{
		Math:    []MathEntry{{ID: "x", Answer: "1"}},
		Writing: []WritingPrompt{{ID: "x", Prompt: "p"}},
	}
	err := validateCorpus(c)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateCorpus_AnswerMustBeAChoice(t *testing.T) {
	tests := []struct {
		name   string
		corpus Corpus
		want   string
	}{
		{"math", Corpus{Math: []MathEntry{{ID: "m", Answer: "3", Choices: []string{"1", "2"}}}}, "math"},
		{"spelling", Corpus{Spelling: []SpellingEntry{{ID: "s", Word: "cat", Choices: []string{"kat"}}}}, "spelling"},
		{"vocabulary", Corpus{Vocabulary: []VocabularyEntry{{ID: "v", Meaning: "big", Choices: []string{"small"}}}}, "vocabulary"},
		{"knowledge", Corpus{Knowledge: []KnowledgeEntry{{ID: "k", Answer: "a", Choices: []string{"b"}}}}, "general_knowledge"},
		{"safety", Corpus{Safety: []SafetyEntry{{ID: "f", Answer: "a", Choices: []string{"b"}}}}, "safety"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCorpus(&tt.corpus)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateCorpus_FreeMathAnswerAllowed(t *testing.T) {
	c := &Corpus{Math: []MathEntry{{ID: "m", Answer: "42"}}}
	if err := validateCorpus(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
