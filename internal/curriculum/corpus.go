package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// FallbackGrade is the grade whose corpus serves grades without their own.
const FallbackGrade = 2

//go:embed data/*.yaml
var dataFS embed.FS

// corpora is the package-level grade index, set by init().
var corpora map[int]*Corpus

func init() {
	loaded, err := loadCorpora(dataFS, "data")
	if err != nil {
		panic(err)
	}
	corpora = loaded
}

// ForGrade returns the corpus for grade. When the grade has no corpus of its
// own the fallback corpus is returned and usingFallback is true.
func ForGrade(grade int) (c *Corpus, usingFallback bool) {
	if c, ok := corpora[grade]; ok {
		return c, false
	}
	return corpora[FallbackGrade], true
}

// HasGrade reports whether grade has a dedicated corpus.
func HasGrade(grade int) bool {
	_, ok := corpora[grade]
	return ok
}

// Grades returns the grades with a dedicated corpus, ascending.
func Grades() []int {
	grades := make([]int, 0, len(corpora))
	for g := range corpora {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}

// loadCorpora parses and validates every YAML file under dir.
func loadCorpora(fsys fs.FS, dir string) (map[int]*Corpus, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	schema, err := compileCorpusSchema()
	if err != nil {
		return nil, err
	}

	out := make(map[int]*Corpus)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		p := path.Join(dir, e.Name())
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		c, err := parseCorpus(schema, raw)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", p, err)
		}
		if _, dup := out[c.Grade]; dup {
			return nil, fmt.Errorf("corpus %s: duplicate grade %d", p, c.Grade)
		}
		out[c.Grade] = c
	}

	if _, ok := out[FallbackGrade]; !ok {
		return nil, fmt.Errorf("fallback corpus for grade %d is missing", FallbackGrade)
	}
	return out, nil
}

// parseCorpus validates raw YAML against the corpus schema, then decodes it.
func parseCorpus(schema *jsonschema.Schema, raw []byte) (*Corpus, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// The validator expects JSON values, so round-trip through encoding/json.
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	var inst any
	if err := json.Unmarshal(asJSON, &inst); err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if err := validateCorpus(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func compileCorpusSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(corpusSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal corpus schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse corpus schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://curriculum-corpus.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	return compiled, nil
}
