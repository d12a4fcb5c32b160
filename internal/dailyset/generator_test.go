package dailyset

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/dailylearn/internal/curriculum"
)

var testDay = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func mustGenerate(t *testing.T, day time.Time, grade, semester int) *DailySetWithQuestions {
	t.Helper()
	out, err := NewGenerator(nil).Generate(day, grade, semester)
	if err != nil {
		t.Fatalf("Generate(%d, %d): %v", grade, semester, err)
	}
	return out
}

func TestGenerate_Deterministic(t *testing.T) {
	a := mustGenerate(t, testDay, 3, 1)
	b := mustGenerate(t, testDay.Add(5*time.Hour), 3, 1)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two generations for the same day differ")
	}
}

func TestGenerate_Header(t *testing.T) {
	out := mustGenerate(t, testDay, 3, 1)
	set := out.Set

	if set.ID != "set-g3-s1-d289" {
		t.Errorf("ID = %q, want set-g3-s1-d289", set.ID)
	}
	if set.SetNumber != 289 {
		t.Errorf("SetNumber = %d, want 289", set.SetNumber)
	}
	if set.TotalQuestions != 14 || len(out.Questions) != 14 {
		t.Errorf("TotalQuestions = %d, len = %d, want 14", set.TotalQuestions, len(out.Questions))
	}
	if set.TotalPoints != 140 {
		t.Errorf("TotalPoints = %d, want 140", set.TotalPoints)
	}
	if !set.IsPublished {
		t.Error("set should be published")
	}
	want := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	if !set.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", set.CreatedAt, want)
	}
	// 2 reflective (1 each) + writing (5) + 11 others (2 each)
	if set.EstimatedMinutes != 2+5+22 {
		t.Errorf("EstimatedMinutes = %d, want 29", set.EstimatedMinutes)
	}
}

func TestGenerate_OrderFollowsComposition(t *testing.T) {
	for grade := 1; grade <= 6; grade++ {
		for semester := 1; semester <= 2; semester++ {
			out := mustGenerate(t, testDay, grade, semester)
			sections, _ := curriculum.Composition(grade, semester)

			var wantSubjects []curriculum.Subject
			for _, s := range sections {
				for i := 0; i < s.Count; i++ {
					wantSubjects = append(wantSubjects, s.Subject)
				}
			}
			if len(out.Questions) != len(wantSubjects) {
				t.Fatalf("grade %d sem %d: got %d questions, want %d",
					grade, semester, len(out.Questions), len(wantSubjects))
			}
			for i, q := range out.Questions {
				if q.OrderIndex != i {
					t.Errorf("grade %d sem %d: question %d has order %d", grade, semester, i, q.OrderIndex)
				}
				if q.Subject != wantSubjects[i] {
					t.Errorf("grade %d sem %d: question %d subject %s, want %s",
						grade, semester, i, q.Subject, wantSubjects[i])
				}
				if q.Points != 10 {
					t.Errorf("question %s: points %d, want 10", q.ID, q.Points)
				}
				if q.DailySetID != out.Set.ID {
					t.Errorf("question %s: set id %q", q.ID, q.DailySetID)
				}
			}
		}
	}
}

func TestGenerate_NoDuplicateCorpusEntries(t *testing.T) {
	for day := 1; day <= 60; day++ {
		d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
		for grade := 1; grade <= 6; grade++ {
			for semester := 1; semester <= 2; semester++ {
				out := mustGenerate(t, d, grade, semester)
				seen := make(map[string]bool)
				for _, q := range out.Questions {
					if !q.Subject.HasCorpus() {
						continue
					}
					key := string(q.Subject) + "/" + q.Metadata.SourceID
					if seen[key] {
						t.Fatalf("day %d grade %d sem %d: duplicate entry %s", day, grade, semester, key)
					}
					seen[key] = true
				}
			}
		}
	}
}

func TestGenerate_FallbackCorpusIsFlagged(t *testing.T) {
	own := mustGenerate(t, testDay, 1, 1)
	if own.UsingFallbackCorpus {
		t.Error("grade 1 has its own corpus, fallback flag should be false")
	}

	if curriculum.HasGrade(5) {
		t.Skip("grade 5 has a dedicated corpus")
	}
	out := mustGenerate(t, testDay, 5, 1)
	if !out.UsingFallbackCorpus {
		t.Fatal("grade 5 should use the fallback corpus")
	}
	for _, q := range out.Questions {
		if q.Subject.HasCorpus() && !q.Metadata.FallbackCorpus {
			t.Errorf("question %s (%s) missing fallback metadata", q.ID, q.Subject)
		}
		if q.Metadata.Grade != 5 {
			t.Errorf("question %s: metadata grade %d, want 5", q.ID, q.Metadata.Grade)
		}
	}
}

func TestGenerate_DiffersAcrossInputs(t *testing.T) {
	sources := func(d *DailySetWithQuestions) []string {
		var ids []string
		for _, q := range d.Questions {
			ids = append(ids, q.Metadata.SourceID)
		}
		return ids
	}

	g1 := mustGenerate(t, testDay, 1, 1)
	g2 := mustGenerate(t, testDay, 2, 1)
	if reflect.DeepEqual(sources(g1), sources(g2)) {
		t.Error("grade 1 and grade 2 produced the same content")
	}

	base := sources(mustGenerate(t, testDay, 2, 1))
	differs := false
	for i := 1; i <= 5 && !differs; i++ {
		other := sources(mustGenerate(t, testDay.AddDate(0, 0, i), 2, 1))
		differs = !reflect.DeepEqual(base, other)
	}
	if !differs {
		t.Error("five consecutive days produced identical content")
	}
}

func TestGenerate_ReflectiveQuestionsShape(t *testing.T) {
	out := mustGenerate(t, testDay, 2, 1)
	emotion, readiness := out.Questions[0], out.Questions[1]

	if emotion.QuestionType != TypeEmotionSelect || len(emotion.Content.Options) == 0 {
		t.Errorf("emotion check: type %s, %d options", emotion.QuestionType, len(emotion.Content.Options))
	}
	if readiness.QuestionType != TypeReadinessScale || readiness.Content.Scale == nil {
		t.Errorf("readiness check: type %s, scale %v", readiness.QuestionType, readiness.Content.Scale)
	}
	if emotion.Graded() || readiness.Graded() {
		t.Error("reflective questions must not be graded")
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	g := NewGenerator(nil)
	tests := []struct {
		grade, semester int
		want            error
	}{
		{0, 1, ErrInvalidGrade},
		{7, 1, ErrInvalidGrade},
		{3, 0, ErrInvalidSemester},
		{3, 3, ErrInvalidSemester},
	}
	for _, tt := range tests {
		_, err := g.Generate(testDay, tt.grade, tt.semester)
		if !errors.Is(err, tt.want) {
			t.Errorf("Generate(%d, %d) err = %v, want %v", tt.grade, tt.semester, err, tt.want)
		}
	}
}

func TestNextIndex_ExhaustionFallsBackToReuse(t *testing.T) {
	corpus := &curriculum.Corpus{Math: []curriculum.MathEntry{{ID: "a"}, {ID: "b"}}}
	bc := newBuildContext(corpus, SeededRandom(42), 3, false)

	first := bc.nextIndex(curriculum.SubjectMath, 2)
	second := bc.nextIndex(curriculum.SubjectMath, 2)
	if first == second {
		t.Fatalf("first two draws repeat index %d", first)
	}
	for i := 0; i < 10; i++ {
		idx := bc.nextIndex(curriculum.SubjectMath, 2)
		if idx < 0 || idx > 1 {
			t.Fatalf("draw after exhaustion out of range: %d", idx)
		}
	}
}

func TestBuilders_CoverEverySubject(t *testing.T) {
	for _, s := range curriculum.AllSubjects() {
		if builders[s] == nil {
			t.Errorf("no builder for %s", s)
		}
	}
}
