package curriculum

// MathEntry is a single arithmetic or word problem.
type MathEntry struct {
	ID          string   `yaml:"id" json:"id"`
	Kind        string   `yaml:"kind" json:"kind"` // arithmetic | word_problem | comparison
	Problem     string   `yaml:"problem" json:"problem"`
	Answer      string   `yaml:"answer" json:"answer"`
	Choices     []string `yaml:"choices,omitempty" json:"choices,omitempty"`
	Hint        string   `yaml:"hint,omitempty" json:"hint,omitempty"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// SpellingEntry asks for the correctly spelled word in a sentence.
type SpellingEntry struct {
	ID          string   `yaml:"id" json:"id"`
	Word        string   `yaml:"word" json:"word"`
	Sentence    string   `yaml:"sentence" json:"sentence"` // contains "___" where the word goes
	Choices     []string `yaml:"choices" json:"choices"`
	Hint        string   `yaml:"hint,omitempty" json:"hint,omitempty"`
	Explanation string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
}

// VocabularyEntry pairs a word with its meaning.
type VocabularyEntry struct {
	ID      string   `yaml:"id" json:"id"`
	Word    string   `yaml:"word" json:"word"`
	Meaning string   `yaml:"meaning" json:"meaning"`
	Example string   `yaml:"example,omitempty" json:"example,omitempty"`
	Choices []string `yaml:"choices" json:"choices"`
}

// KnowledgeEntry is a general-knowledge multiple choice question.
type KnowledgeEntry struct {
	ID          string   `yaml:"id" json:"id"`
	Category    string   `yaml:"category" json:"category"`
	Question    string   `yaml:"question" json:"question"`
	Choices     []string `yaml:"choices" json:"choices"`
	Answer      string   `yaml:"answer" json:"answer"`
	Explanation string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
}

// SafetyEntry describes a situation and the safe response.
type SafetyEntry struct {
	ID          string   `yaml:"id" json:"id"`
	Situation   string   `yaml:"situation" json:"situation"`
	Question    string   `yaml:"question" json:"question"`
	Choices     []string `yaml:"choices" json:"choices"`
	Answer      string   `yaml:"answer" json:"answer"`
	Explanation string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
}

// WritingPrompt is an open-ended writing task.
type WritingPrompt struct {
	ID        string `yaml:"id" json:"id"`
	Prompt    string `yaml:"prompt" json:"prompt"`
	Guide     string `yaml:"guide,omitempty" json:"guide,omitempty"`
	MinLength int    `yaml:"min_length,omitempty" json:"min_length,omitempty"`
}

// Corpus holds every entry list for one grade.
type Corpus struct {
	Grade      int               `yaml:"grade" json:"grade"`
	Math       []MathEntry       `yaml:"math" json:"math"`
	Spelling   []SpellingEntry   `yaml:"spelling" json:"spelling"`
	Vocabulary []VocabularyEntry `yaml:"vocabulary" json:"vocabulary"`
	Knowledge  []KnowledgeEntry  `yaml:"general_knowledge" json:"general_knowledge"`
	Safety     []SafetyEntry     `yaml:"safety" json:"safety"`
	Writing    []WritingPrompt   `yaml:"writing" json:"writing"`
}

// Len returns the number of entries the corpus holds for subject.
// Subjects without a corpus list report 0.
func (c *Corpus) Len(s Subject) int {
	switch s {
	case SubjectMath:
		return len(c.Math)
	case SubjectSpelling:
		return len(c.Spelling)
	case SubjectVocabulary:
		return len(c.Vocabulary)
	case SubjectGeneralKnowledge:
		return len(c.Knowledge)
	case SubjectSafety:
		return len(c.Safety)
	case SubjectWriting:
		return len(c.Writing)
	default:
		return 0
	}
}
