package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// validateCorpus performs the cross-field checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateCorpus(c *Corpus) error {
	var errs []string

	ids := make(map[string]bool)
	checkID := func(id string) {
		if ids[id] {
			errs = append(errs, fmt.Sprintf("duplicate entry ID: %q", id))
		}
		ids[id] = true
	}

	for _, e := range c.Math {
		checkID(e.ID)
		if len(e.Choices) > 0 && !slices.Contains(e.Choices, e.Answer) {
			errs = append(errs, fmt.Sprintf("math %q: answer %q not among choices", e.ID, e.Answer))
		}
	}
	for _, e := range c.Spelling {
		checkID(e.ID)
		if !slices.Contains(e.Choices, e.Word) {
			errs = append(errs, fmt.Sprintf("spelling %q: word %q not among choices", e.ID, e.Word))
		}
	}
	for _, e := range c.Vocabulary {
		checkID(e.ID)
		if !slices.Contains(e.Choices, e.Meaning) {
			errs = append(errs, fmt.Sprintf("vocabulary %q: meaning not among choices", e.ID))
		}
	}
	for _, e := range c.Knowledge {
		checkID(e.ID)
		if !slices.Contains(e.Choices, e.Answer) {
			errs = append(errs, fmt.Sprintf("general_knowledge %q: answer %q not among choices", e.ID, e.Answer))
		}
	}
	for _, e := range c.Safety {
		checkID(e.ID)
		if !slices.Contains(e.Choices, e.Answer) {
			errs = append(errs, fmt.Sprintf("safety %q: answer %q not among choices", e.ID, e.Answer))
		}
	}
	for _, e := range c.Writing {
		checkID(e.ID)
	}

	if len(errs) > 0 {
		return fmt.Errorf("corpus validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
