package enrich

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchema pins down the collaborator contract: every row must echo the
// company name and carry one of the three outcome flags.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"results": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"company_name": map[string]any{"type": "string", "minLength": 1},
					"size":         map[string]any{"type": "string"},
					"industry":     map[string]any{"type": "string"},
					"revenue":      map[string]any{"type": "string"},
					"status":       map[string]any{"enum": []any{"ok", "not_found", "error"}},
				},
				"required": []any{"company_name", "status"},
			},
		},
	},
	"required": []any{"results"},
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
