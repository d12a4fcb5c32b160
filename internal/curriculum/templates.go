package curriculum

// Template is a fixed question for subjects that have no dedicated corpus
// yet. The generator picks one uniformly per repetition.
type Template struct {
	ID          string
	Type        string // multiple_choice | short_answer | free_text
	Prompt      string
	Choices     []string
	Answer      string
	Explanation string
	Hint        string
}

var templates = map[Subject][]Template{
	SubjectKorean: {
		{ID: "korean-1", Type: "multiple_choice", Prompt: "Which word means 'thank you' in Korean?",
			Choices: []string{"감사합니다", "안녕하세요", "미안합니다", "잘 자요"}, Answer: "감사합니다",
			Explanation: "감사합니다 (gamsahamnida) is the polite way to say thank you."},
		{ID: "korean-2", Type: "multiple_choice", Prompt: "Which one is a vowel in Hangul?",
			Choices: []string{"ㅏ", "ㄱ", "ㄴ", "ㅁ"}, Answer: "ㅏ",
			Explanation: "ㅏ is a vowel; ㄱ, ㄴ and ㅁ are consonants."},
		{ID: "korean-3", Type: "short_answer", Prompt: "How many letters are in the word 학교 (school)?",
			Answer: "2", Explanation: "학 and 교 are two syllable blocks.", Hint: "Count the blocks."},
	},
	SubjectEnglish: {
		{ID: "english-1", Type: "multiple_choice", Prompt: "Which word is an animal?",
			Choices: []string{"cat", "blue", "run", "happy"}, Answer: "cat",
			Explanation: "A cat is an animal. Blue is a color, run is an action, happy is a feeling."},
		{ID: "english-2", Type: "multiple_choice", Prompt: "What is the opposite of 'big'?",
			Choices: []string{"small", "tall", "long", "wide"}, Answer: "small",
			Explanation: "Big and small are opposites."},
		{ID: "english-3", Type: "short_answer", Prompt: "Spell the number 3 in English.",
			Answer: "three", Explanation: "3 is spelled t-h-r-e-e.", Hint: "It starts with 'th'."},
		{ID: "english-4", Type: "multiple_choice", Prompt: "Which sentence is correct?",
			Choices: []string{"She is my friend.", "She are my friend.", "She am my friend.", "She be my friend."},
			Answer:  "She is my friend.", Explanation: "Use 'is' with he, she and it."},
	},
	SubjectHanja: {
		{ID: "hanja-1", Type: "multiple_choice", Prompt: "What does the character 山 mean?",
			Choices: []string{"mountain", "water", "fire", "tree"}, Answer: "mountain",
			Explanation: "山 (산) looks like three mountain peaks."},
		{ID: "hanja-2", Type: "multiple_choice", Prompt: "What does the character 水 mean?",
			Choices: []string{"water", "sun", "moon", "person"}, Answer: "water",
			Explanation: "水 (수) means water."},
		{ID: "hanja-3", Type: "multiple_choice", Prompt: "What does the character 人 mean?",
			Choices: []string{"person", "big", "small", "king"}, Answer: "person",
			Explanation: "人 (인) looks like a person walking."},
	},
	SubjectScience: {
		{ID: "science-1", Type: "multiple_choice", Prompt: "What do plants need to make food?",
			Choices: []string{"sunlight", "sand", "plastic", "salt"}, Answer: "sunlight",
			Explanation: "Plants use sunlight, water and air to make food."},
		{ID: "science-2", Type: "multiple_choice", Prompt: "Which state of matter is ice?",
			Choices: []string{"solid", "liquid", "gas", "plasma"}, Answer: "solid",
			Explanation: "Ice is frozen water, a solid."},
		{ID: "science-3", Type: "multiple_choice", Prompt: "Which planet do we live on?",
			Choices: []string{"Earth", "Mars", "Venus", "Jupiter"}, Answer: "Earth",
			Explanation: "We live on Earth, the third planet from the sun."},
	},
	SubjectSocial: {
		{ID: "social-1", Type: "multiple_choice", Prompt: "Who helps put out fires in our town?",
			Choices: []string{"firefighters", "bakers", "farmers", "pilots"}, Answer: "firefighters",
			Explanation: "Firefighters keep the community safe from fires."},
		{ID: "social-2", Type: "multiple_choice", Prompt: "Where do we borrow books for free?",
			Choices: []string{"library", "bank", "hospital", "market"}, Answer: "library",
			Explanation: "Libraries lend books to everyone."},
		{ID: "social-3", Type: "multiple_choice", Prompt: "What is the capital city of Korea?",
			Choices: []string{"Seoul", "Busan", "Incheon", "Daegu"}, Answer: "Seoul",
			Explanation: "Seoul is the capital of the Republic of Korea."},
	},
	SubjectCreative: {
		{ID: "creative-1", Type: "free_text", Prompt: "If you could talk to an animal, which one would you choose and what would you ask?"},
		{ID: "creative-2", Type: "free_text", Prompt: "Invent a new toy. What does it do?"},
		{ID: "creative-3", Type: "free_text", Prompt: "List three different ways to use a paper cup."},
	},
}

// Templates returns the template table for subject. Subjects with a corpus
// or reflective subjects have none.
func Templates(s Subject) []Template {
	return templates[s]
}
