package curriculum

// Subject identifies a section of the daily set.
type Subject string

const (
	SubjectEmotionCheck     Subject = "emotion_check"
	SubjectReadinessCheck   Subject = "readiness_check"
	SubjectMath             Subject = "math"
	SubjectSpelling         Subject = "spelling"
	SubjectVocabulary       Subject = "vocabulary"
	SubjectGeneralKnowledge Subject = "general_knowledge"
	SubjectSafety           Subject = "safety"
	SubjectWriting          Subject = "writing"
	SubjectKorean           Subject = "korean"
	SubjectEnglish          Subject = "english"
	SubjectHanja            Subject = "hanja"
	SubjectScience          Subject = "science"
	SubjectSocial           Subject = "social"
	SubjectCreative         Subject = "creative"
)

// AllSubjects returns every subject in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectEmotionCheck,
		SubjectReadinessCheck,
		SubjectMath,
		SubjectSpelling,
		SubjectVocabulary,
		SubjectGeneralKnowledge,
		SubjectSafety,
		SubjectWriting,
		SubjectKorean,
		SubjectEnglish,
		SubjectHanja,
		SubjectScience,
		SubjectSocial,
		SubjectCreative,
	}
}

// IsReflective reports whether answers to the subject are self-reports that
// never count toward scores or accuracy.
func (s Subject) IsReflective() bool {
	return s == SubjectEmotionCheck || s == SubjectReadinessCheck
}

// HasCorpus reports whether questions for the subject are drawn from a
// grade corpus list rather than the generic template table.
func (s Subject) HasCorpus() bool {
	switch s {
	case SubjectMath, SubjectSpelling, SubjectVocabulary,
		SubjectGeneralKnowledge, SubjectSafety, SubjectWriting:
		return true
	default:
		return false
	}
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	for _, known := range AllSubjects() {
		if s == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for a subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectEmotionCheck:
		return "Emotion Check"
	case SubjectReadinessCheck:
		return "Readiness Check"
	case SubjectMath:
		return "Math"
	case SubjectSpelling:
		return "Spelling"
	case SubjectVocabulary:
		return "Vocabulary"
	case SubjectGeneralKnowledge:
		return "General Knowledge"
	case SubjectSafety:
		return "Safety"
	case SubjectWriting:
		return "Writing"
	case SubjectKorean:
		return "Korean"
	case SubjectEnglish:
		return "English"
	case SubjectHanja:
		return "Hanja"
	case SubjectScience:
		return "Science"
	case SubjectSocial:
		return "Social Studies"
	case SubjectCreative:
		return "Creative Thinking"
	default:
		return string(s)
	}
}
