package session

import (
	"testing"

	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/dailyset"
)

func mcQuestion(answer string, choices ...string) dailyset.Question {
	return dailyset.Question{
		Subject:      curriculum.SubjectMath,
		QuestionType: dailyset.TypeMultipleChoice,
		Content:      dailyset.Content{Choices: choices},
		Answer:       dailyset.Answer{Value: answer},
	}
}

func TestCheckAnswer(t *testing.T) {
	short := dailyset.Question{
		Subject:      curriculum.SubjectEnglish,
		QuestionType: dailyset.TypeShortAnswer,
		Answer:       dailyset.Answer{Value: "three", Accepted: []string{"3"}},
	}
	numeric := dailyset.Question{
		Subject:      curriculum.SubjectMath,
		QuestionType: dailyset.TypeShortAnswer,
		Answer:       dailyset.Answer{Value: "42"},
	}
	writing := dailyset.Question{Subject: curriculum.SubjectWriting, QuestionType: dailyset.TypeFreeText}
	emotion := dailyset.Question{Subject: curriculum.SubjectEmotionCheck, QuestionType: dailyset.TypeEmotionSelect}

	tests := []struct {
		name   string
		answer string
		q      dailyset.Question
		want   bool
	}{
		{"exact", "42", numeric, true},
		{"leading zeros", "042", numeric, true},
		{"wrong number", "41", numeric, false},
		{"case and space", "  THREE ", short, true},
		{"accepted alternative", "3", short, true},
		{"empty", "   ", short, false},
		{"mc by text", "the sun", mcQuestion("the sun", "the moon", "the sun"), true},
		{"mc by number", "2", mcQuestion("the sun", "the moon", "the sun"), true},
		{"mc wrong number", "1", mcQuestion("the sun", "the moon", "the sun"), false},
		{"mc numeric choice text", "12", mcQuestion("12", "15", "12"), true},
		{"mc numeric choice not index", "2", mcQuestion("12", "2", "12"), false},
		{"inner spaces collapse", "3  x 7", mcQuestion("3 x 7", "3 x 7", "4 x 5"), true},
		{"free text credited", "I helped my mom.", writing, true},
		{"free text empty", "", writing, false},
		{"reflective never correct", "happy", emotion, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, tt.q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
