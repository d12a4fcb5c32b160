package curriculum

import "fmt"

// GradeBand groups two adjacent grades that share a daily structure.
type GradeBand string

const (
	Band12 GradeBand = "1-2"
	Band34 GradeBand = "3-4"
	Band56 GradeBand = "5-6"
)

// BandForGrade maps a grade (1-6) to its band.
func BandForGrade(grade int) (GradeBand, error) {
	switch grade {
	case 1, 2:
		return Band12, nil
	case 3, 4:
		return Band34, nil
	case 5, 6:
		return Band56, nil
	default:
		return "", fmt.Errorf("grade %d out of range 1-6", grade)
	}
}

// Section is one block of the daily set: Count questions of Subject.
type Section struct {
	Subject Subject
	Title   string
	Count   int
}

// Minutes returns the estimated time for the whole section.
func (s Section) Minutes() int {
	per := 2
	switch {
	case s.Subject.IsReflective():
		per = 1
	case s.Subject == SubjectWriting:
		per = 5
	}
	return per * s.Count
}

type compositionKey struct {
	band     GradeBand
	semester int
}

var (
	emotionSection   = Section{Subject: SubjectEmotionCheck, Title: "How are you feeling today?", Count: 1}
	readinessSection = Section{Subject: SubjectReadinessCheck, Title: "Ready to learn?", Count: 1}
)

// compositions is the fixed daily structure per band and semester. Order
// matters: it defines question order in the generated set.
var compositions = map[compositionKey][]Section{
	{Band12, 1}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math warm-up", Count: 3},
		{Subject: SubjectSpelling, Title: "Spelling", Count: 2},
		{Subject: SubjectVocabulary, Title: "Word of the day", Count: 2},
		{Subject: SubjectGeneralKnowledge, Title: "Did you know?", Count: 1},
		{Subject: SubjectSafety, Title: "Stay safe", Count: 1},
		{Subject: SubjectKorean, Title: "Korean", Count: 1},
		{Subject: SubjectCreative, Title: "Think creatively", Count: 1},
	},
	{Band12, 2}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math warm-up", Count: 3},
		{Subject: SubjectSpelling, Title: "Spelling", Count: 2},
		{Subject: SubjectVocabulary, Title: "Word of the day", Count: 2},
		{Subject: SubjectGeneralKnowledge, Title: "Did you know?", Count: 1},
		{Subject: SubjectSafety, Title: "Stay safe", Count: 1},
		{Subject: SubjectEnglish, Title: "English", Count: 1},
		{Subject: SubjectWriting, Title: "Write a little", Count: 1},
	},
	{Band34, 1}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math practice", Count: 4},
		{Subject: SubjectVocabulary, Title: "Vocabulary", Count: 2},
		{Subject: SubjectSpelling, Title: "Spelling", Count: 1},
		{Subject: SubjectGeneralKnowledge, Title: "General knowledge", Count: 1},
		{Subject: SubjectScience, Title: "Science", Count: 1},
		{Subject: SubjectKorean, Title: "Korean", Count: 1},
		{Subject: SubjectHanja, Title: "Hanja", Count: 1},
		{Subject: SubjectWriting, Title: "Daily writing", Count: 1},
	},
	{Band34, 2}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math practice", Count: 4},
		{Subject: SubjectVocabulary, Title: "Vocabulary", Count: 2},
		{Subject: SubjectSpelling, Title: "Spelling", Count: 1},
		{Subject: SubjectGeneralKnowledge, Title: "General knowledge", Count: 1},
		{Subject: SubjectSocial, Title: "Social studies", Count: 1},
		{Subject: SubjectEnglish, Title: "English", Count: 1},
		{Subject: SubjectHanja, Title: "Hanja", Count: 1},
		{Subject: SubjectWriting, Title: "Daily writing", Count: 1},
	},
	{Band56, 1}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math challenge", Count: 5},
		{Subject: SubjectVocabulary, Title: "Vocabulary", Count: 2},
		{Subject: SubjectGeneralKnowledge, Title: "General knowledge", Count: 1},
		{Subject: SubjectScience, Title: "Science", Count: 1},
		{Subject: SubjectSocial, Title: "Social studies", Count: 1},
		{Subject: SubjectEnglish, Title: "English", Count: 1},
		{Subject: SubjectHanja, Title: "Hanja", Count: 1},
		{Subject: SubjectWriting, Title: "Essay corner", Count: 1},
	},
	{Band56, 2}: {
		emotionSection,
		readinessSection,
		{Subject: SubjectMath, Title: "Math challenge", Count: 5},
		{Subject: SubjectVocabulary, Title: "Vocabulary", Count: 2},
		{Subject: SubjectGeneralKnowledge, Title: "General knowledge", Count: 2},
		{Subject: SubjectSafety, Title: "Stay safe", Count: 1},
		{Subject: SubjectEnglish, Title: "English", Count: 1},
		{Subject: SubjectCreative, Title: "Think creatively", Count: 1},
		{Subject: SubjectWriting, Title: "Essay corner", Count: 1},
	},
}

// Composition returns the ordered sections for grade and semester. The
// returned slice is a copy.
func Composition(grade, semester int) ([]Section, error) {
	band, err := BandForGrade(grade)
	if err != nil {
		return nil, err
	}
	if semester != 1 && semester != 2 {
		return nil, fmt.Errorf("semester %d must be 1 or 2", semester)
	}
	sections := compositions[compositionKey{band, semester}]
	out := make([]Section, len(sections))
	copy(out, sections)
	return out, nil
}

// TotalCount sums the section counts.
func TotalCount(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += s.Count
	}
	return n
}
