// Package surveyfile loads survey definitions: the JSON documents that
// supply a survey's title, optional page size, and ordered question list.
// Documents are checked against a JSON Schema and a format-version gate
// before they reach the session core.
package surveyfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/abhisek/intake/internal/survey"
)

// DefaultPageSize is the page size used when a definition does not set one.
const DefaultPageSize = 10

// supportedFormat is the definition format major version this build reads.
const supportedFormat = "v1"

//go:embed sample.json
var sampleJSON []byte

// QuestionDef is one question entry of a definition document.
type QuestionDef struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Definition is a parsed, validated survey definition.
type Definition struct {
	Format    string        `json:"format,omitempty"`
	Title     string        `json:"title"`
	PageSize  int           `json:"page_size,omitempty"`
	Questions []QuestionDef `json:"questions"`
}

// Parse validates and decodes a definition document. Validation runs in
// three layers: JSON Schema (shape and field constraints), the format
// version gate, and the question-set structural rules (unique positive
// ids).
func Parse(data []byte) (*Definition, error) {
	if err := validateDefinition(data); err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode survey definition: %w", err)
	}

	if err := checkFormat(def.Format); err != nil {
		return nil, err
	}
	if _, err := def.Set(); err != nil {
		return nil, fmt.Errorf("invalid questions: %w", err)
	}

	return &def, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Default returns the questionnaire shipped in the binary, parsed through
// the same pipeline as user files.
func Default() (*Definition, error) {
	def, err := Parse(sampleJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded sample survey: %w", err)
	}
	return def, nil
}

// Set converts the definition's questions into a session question set.
func (d *Definition) Set() (*survey.Set, error) {
	qs := make([]survey.Question, 0, len(d.Questions))
	for _, q := range d.Questions {
		qs = append(qs, survey.Question{ID: q.ID, Text: q.Text})
	}
	return survey.NewSet(qs)
}

// EffectivePageSize returns the definition's page size, falling back to
// DefaultPageSize when the document does not set one.
func (d *Definition) EffectivePageSize() int {
	if d.PageSize > 0 {
		return d.PageSize
	}
	return DefaultPageSize
}

// checkFormat gates on the definition format version. An absent format
// means the current one; anything else must be a valid semver whose major
// version this build supports.
func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("format %q is not a valid version (want e.g. %q)", format, supportedFormat)
	}
	if semver.Major(format) != supportedFormat {
		return fmt.Errorf("format %s is not supported by this build (supports %s)", format, supportedFormat)
	}
	return nil
}
