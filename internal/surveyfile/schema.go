package surveyfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// definitionSchema constrains the shape of a definition document. Question
// ordering and id uniqueness are structural rules checked by survey.NewSet,
// not here.
var definitionSchema = map[string]any{
	"type":     "object",
	"required": []string{"title", "questions"},
	"properties": map[string]any{
		"format": map[string]any{
			"type": "string",
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"page_size": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "text"},
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

const definitionSchemaURL = "intake://survey-definition.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func definitionValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(definitionSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal definition schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse definition schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(definitionSchemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("register definition schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(definitionSchemaURL)
	})
	return compiledSchema, schemaErr
}

// validateDefinition checks a raw document against the definition schema.
func validateDefinition(data []byte) error {
	schema, err := definitionValidator()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("survey definition is not valid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("survey definition does not match schema: %w", err)
	}
	return nil
}
