package dailyset

import (
	"fmt"

	"github.com/abhisek/dailylearn/internal/curriculum"
)

// draft is a question before the generator assigns its ID and position.
type draft struct {
	Type        QuestionType
	Content     Content
	Answer      Answer
	Explanation string
	Hint        string
	Metadata    Metadata
}

// buildContext is the per-call state shared by builders. rng is the single
// stream for the whole set; used tracks corpus indexes already taken.
type buildContext struct {
	corpus   *curriculum.Corpus
	rng      func() float64
	used     map[curriculum.Subject]map[int]bool
	grade    int
	fallback bool
}

func newBuildContext(corpus *curriculum.Corpus, rng func() float64, grade int, fallback bool) *buildContext {
	return &buildContext{
		corpus:   corpus,
		rng:      rng,
		used:     make(map[curriculum.Subject]map[int]bool),
		grade:    grade,
		fallback: fallback,
	}
}

// nextIndex draws one index into a list of n entries for subject, preferring
// indexes not yet used in this set. Once all are used it draws uniformly.
// Exactly one value is consumed from rng either way.
func (bc *buildContext) nextIndex(subject curriculum.Subject, n int) int {
	used := bc.used[subject]
	if used == nil {
		used = make(map[int]bool)
		bc.used[subject] = used
	}
	if len(used) >= n {
		return pick(bc.rng, n)
	}
	free := make([]int, 0, n-len(used))
	for i := 0; i < n; i++ {
		if !used[i] {
			free = append(free, i)
		}
	}
	idx := free[pick(bc.rng, len(free))]
	used[idx] = true
	return idx
}

func (bc *buildContext) meta(sourceID string) Metadata {
	return Metadata{SourceID: sourceID, Grade: bc.grade, FallbackCorpus: bc.fallback}
}

type builder func(bc *buildContext) draft

// builders dispatches on subject. Adding a subject means adding an entry.
var builders = map[curriculum.Subject]builder{
	curriculum.SubjectEmotionCheck:     buildEmotionCheck,
	curriculum.SubjectReadinessCheck:   buildReadinessCheck,
	curriculum.SubjectMath:             buildMath,
	curriculum.SubjectSpelling:         buildSpelling,
	curriculum.SubjectVocabulary:       buildVocabulary,
	curriculum.SubjectGeneralKnowledge: buildKnowledge,
	curriculum.SubjectSafety:           buildSafety,
	curriculum.SubjectWriting:          buildWriting,
	curriculum.SubjectKorean:           templateBuilder(curriculum.SubjectKorean),
	curriculum.SubjectEnglish:          templateBuilder(curriculum.SubjectEnglish),
	curriculum.SubjectHanja:            templateBuilder(curriculum.SubjectHanja),
	curriculum.SubjectScience:          templateBuilder(curriculum.SubjectScience),
	curriculum.SubjectSocial:           templateBuilder(curriculum.SubjectSocial),
	curriculum.SubjectCreative:         templateBuilder(curriculum.SubjectCreative),
}

func init() {
	for _, s := range curriculum.AllSubjects() {
		if _, ok := builders[s]; !ok {
			panic(fmt.Sprintf("dailyset: no builder for subject %q", s))
		}
	}
}

var moods = []Option{
	{Value: "happy", Label: "Happy", Emoji: "😊"},
	{Value: "excited", Label: "Excited", Emoji: "🤩"},
	{Value: "calm", Label: "Calm", Emoji: "😌"},
	{Value: "tired", Label: "Tired", Emoji: "😴"},
	{Value: "sad", Label: "Sad", Emoji: "😢"},
	{Value: "angry", Label: "Upset", Emoji: "😠"},
}

func buildEmotionCheck(bc *buildContext) draft {
	opts := make([]Option, len(moods))
	copy(opts, moods)
	return draft{
		Type:     TypeEmotionSelect,
		Content:  Content{Prompt: "How are you feeling right now?", Options: opts},
		Metadata: Metadata{Grade: bc.grade},
	}
}

func buildReadinessCheck(bc *buildContext) draft {
	return draft{
		Type: TypeReadinessScale,
		Content: Content{
			Prompt: "How ready are you to learn today?",
			Scale:  &Scale{Min: 1, Max: 5, MinLabel: "Not yet", MaxLabel: "Let's go!"},
		},
		Metadata: Metadata{Grade: bc.grade},
	}
}

func buildMath(bc *buildContext) draft {
	e := bc.corpus.Math[bc.nextIndex(curriculum.SubjectMath, len(bc.corpus.Math))]
	qt := TypeShortAnswer
	if len(e.Choices) > 0 {
		qt = TypeMultipleChoice
	}
	m := bc.meta(e.ID)
	m.Kind = e.Kind
	return draft{
		Type:        qt,
		Content:     Content{Prompt: e.Problem, Choices: cloneStrings(e.Choices)},
		Answer:      Answer{Value: e.Answer},
		Explanation: e.Explanation,
		Hint:        e.Hint,
		Metadata:    m,
	}
}

func buildSpelling(bc *buildContext) draft {
	e := bc.corpus.Spelling[bc.nextIndex(curriculum.SubjectSpelling, len(bc.corpus.Spelling))]
	explanation := e.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("The correct spelling is %q.", e.Word)
	}
	return draft{
		Type: TypeFillBlank,
		Content: Content{
			Prompt:   "Choose the correct spelling to fill the blank.",
			Sentence: e.Sentence,
			Choices:  cloneStrings(e.Choices),
		},
		Answer:      Answer{Value: e.Word},
		Explanation: explanation,
		Hint:        e.Hint,
		Metadata:    bc.meta(e.ID),
	}
}

func buildVocabulary(bc *buildContext) draft {
	e := bc.corpus.Vocabulary[bc.nextIndex(curriculum.SubjectVocabulary, len(bc.corpus.Vocabulary))]
	var explanation string
	if e.Example != "" {
		explanation = "Example: " + e.Example
	}
	return draft{
		Type: TypeMultipleChoice,
		Content: Content{
			Prompt:  fmt.Sprintf("What does %q mean?", e.Word),
			Word:    e.Word,
			Choices: cloneStrings(e.Choices),
		},
		Answer:      Answer{Value: e.Meaning},
		Explanation: explanation,
		Metadata:    bc.meta(e.ID),
	}
}

func buildKnowledge(bc *buildContext) draft {
	e := bc.corpus.Knowledge[bc.nextIndex(curriculum.SubjectGeneralKnowledge, len(bc.corpus.Knowledge))]
	m := bc.meta(e.ID)
	m.Category = e.Category
	return draft{
		Type:        TypeMultipleChoice,
		Content:     Content{Prompt: e.Question, Choices: cloneStrings(e.Choices)},
		Answer:      Answer{Value: e.Answer},
		Explanation: e.Explanation,
		Metadata:    m,
	}
}

func buildSafety(bc *buildContext) draft {
	e := bc.corpus.Safety[bc.nextIndex(curriculum.SubjectSafety, len(bc.corpus.Safety))]
	return draft{
		Type: TypeMultipleChoice,
		Content: Content{
			Prompt:    e.Question,
			Situation: e.Situation,
			Choices:   cloneStrings(e.Choices),
		},
		Answer:      Answer{Value: e.Answer},
		Explanation: e.Explanation,
		Metadata:    bc.meta(e.ID),
	}
}

func buildWriting(bc *buildContext) draft {
	e := bc.corpus.Writing[bc.nextIndex(curriculum.SubjectWriting, len(bc.corpus.Writing))]
	return draft{
		Type:     TypeFreeText,
		Content:  Content{Prompt: e.Prompt, Guide: e.Guide, MinLength: e.MinLength},
		Metadata: bc.meta(e.ID),
	}
}

// templateBuilder draws uniformly from the subject's fixed template table.
// These subjects have no graded corpus, so the fallback flag never applies.
func templateBuilder(subject curriculum.Subject) builder {
	return func(bc *buildContext) draft {
		tpls := curriculum.Templates(subject)
		t := tpls[pick(bc.rng, len(tpls))]
		return draft{
			Type:        QuestionType(t.Type),
			Content:     Content{Prompt: t.Prompt, Choices: cloneStrings(t.Choices)},
			Answer:      Answer{Value: t.Answer},
			Explanation: t.Explanation,
			Hint:        t.Hint,
			Metadata:    Metadata{SourceID: t.ID, Grade: bc.grade},
		}
	}
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
