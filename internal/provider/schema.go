package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildSegmentsJSONSchema describes the normalized segments document
// persisted as the json artifact. Validated before storage so a buggy
// adapter can never poison downstream consumers.
func BuildSegmentsJSONSchema() map[string]any {
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"start":      map[string]any{"type": "number", "minimum": 0},
				"end":        map[string]any{"type": "number", "minimum": 0},
				"speaker":    map[string]any{"type": "string"},
				"text":       map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required":             []string{"start", "end", "text"},
			"additionalProperties": false,
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// MarshalSegments encodes segments and validates the result against
// the normalized schema.
func MarshalSegments(segments []Segment) ([]byte, error) {
	if segments == nil {
		segments = []Segment{}
	}
	b, err := json.Marshal(segments)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSONAgainstSchema(BuildSegmentsJSONSchema(), b); err != nil {
		return nil, err
	}
	return b, nil
}
