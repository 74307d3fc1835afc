package backend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchema constrains a quiz-generation response before it is handed to
// the rest of the client. The service is allowed to invent question types,
// so "type" is a plain string here; unknown types degrade at render time.
var quizSchema = map[string]any{
	"type":     "object",
	"required": []any{"quiz_id", "questions"},
	"properties": map[string]any{
		"quiz_id": map[string]any{"type": "integer"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question_id", "type", "stem"},
				"properties": map[string]any{
					"question_id": map[string]any{"type": "integer"},
					"type":        map[string]any{"type": "string"},
					"stem":        map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"source_chunk_ids": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "integer"},
					},
				},
			},
		},
		"difficulty_plan": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"Easy":   map[string]any{"type": "integer", "minimum": 0},
				"Medium": map[string]any{"type": "integer", "minimum": 0},
				"Hard":   map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
}

// compiledQuizSchema holds the compiled form, built once.
var compiledQuizSchema sync.Map // map[string]*jsonschema.Schema

// validateQuizPayload checks a raw quiz-generation response against
// quizSchema. Returns *ErrInvalidResponse on failure.
func validateQuizPayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledSchema("quiz", quizSchema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile quiz schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := compiledQuizSchema.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledQuizSchema.Store(name, compiled)
	return compiled, nil
}
