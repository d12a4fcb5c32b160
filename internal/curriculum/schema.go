package curriculum

func stringArray(minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string", "minLength": 1},
		"minItems": minItems,
	}
}

func entryList(required []any, props map[string]any) map[string]any {
	props["id"] = map[string]any{"type": "string", "minLength": 1}
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             append([]any{"id"}, required...),
			"additionalProperties": false,
		},
	}
}

// corpusSchema is the JSON schema every embedded grade file must satisfy.
var corpusSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"grade": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 6,
		},
		"math": entryList([]any{"kind", "problem", "answer", "explanation"}, map[string]any{
			"kind": map[string]any{
				"type": "string",
				"enum": []any{"arithmetic", "word_problem", "comparison"},
			},
			"problem":     map[string]any{"type": "string", "minLength": 1},
			"answer":      map[string]any{"type": "string", "minLength": 1},
			"choices":     stringArray(2),
			"hint":        map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string"},
		}),
		"spelling": entryList([]any{"word", "sentence", "choices"}, map[string]any{
			"word":        map[string]any{"type": "string", "minLength": 1},
			"sentence":    map[string]any{"type": "string", "pattern": "___"},
			"choices":     stringArray(2),
			"hint":        map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string"},
		}),
		"vocabulary": entryList([]any{"word", "meaning", "choices"}, map[string]any{
			"word":    map[string]any{"type": "string", "minLength": 1},
			"meaning": map[string]any{"type": "string", "minLength": 1},
			"example": map[string]any{"type": "string"},
			"choices": stringArray(2),
		}),
		"general_knowledge": entryList([]any{"category", "question", "choices", "answer"}, map[string]any{
			"category":    map[string]any{"type": "string"},
			"question":    map[string]any{"type": "string", "minLength": 1},
			"choices":     stringArray(2),
			"answer":      map[string]any{"type": "string", "minLength": 1},
			"explanation": map[string]any{"type": "string"},
		}),
		"safety": entryList([]any{"situation", "question", "choices", "answer"}, map[string]any{
			"situation":   map[string]any{"type": "string", "minLength": 1},
			"question":    map[string]any{"type": "string", "minLength": 1},
			"choices":     stringArray(2),
			"answer":      map[string]any{"type": "string", "minLength": 1},
			"explanation": map[string]any{"type": "string"},
		}),
		"writing": entryList([]any{"prompt"}, map[string]any{
			"prompt":     map[string]any{"type": "string", "minLength": 1},
			"guide":      map[string]any{"type": "string"},
			"min_length": map[string]any{"type": "integer", "minimum": 0},
		}),
	},
	"required":             []any{"grade", "math", "spelling", "vocabulary", "general_knowledge", "safety", "writing"},
	"additionalProperties": false,
}
