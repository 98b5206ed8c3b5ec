package httpapi

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// schemaKind selects which request schema to validate against.
type schemaKind int

const (
	analyzeSchema schemaKind = iota
	suggestSchema
	validateSchema
)

// Structural schemas for the request bodies. Value-range rules (weights
// summing to 100, importance clamping) stay in the domain validator;
// the schema only rejects bodies the typed decoder could not represent.
const analyzeSchemaJSON = `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "due_date": {"type": "string"},
          "estimated_hours": {"type": "number"},
          "importance": {"type": "integer"},
          "dependencies": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "strategy": {"type": "string"},
    "reference_date": {"type": "string"},
    "weights": {
      "type": "object",
      "properties": {
        "urgency": {"type": "integer"},
        "importance": {"type": "integer"},
        "effort": {"type": "integer"},
        "dependency": {"type": "integer"}
      }
    }
  }
}`

const suggestSchemaJSON = `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {"type": "array"},
    "strategy": {"type": "string"},
    "reference_date": {"type": "string"},
    "count": {"type": "integer"}
  }
}`

// The validate endpoint reports per-entry problems itself, so its schema
// only demands a tasks array: a draft missing id or title must reach the
// per-entry report, not fail the whole request.
const validateSchemaJSON = `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {"type": "object"}
    }
  }
}`

var (
	analyzeSchemaLoader  = gojsonschema.NewStringLoader(analyzeSchemaJSON)
	suggestSchemaLoader  = gojsonschema.NewStringLoader(suggestSchemaJSON)
	validateSchemaLoader = gojsonschema.NewStringLoader(validateSchemaJSON)
)

// validateBody checks a raw JSON body against the given schema and
// returns human-readable violation details.
func validateBody(kind schemaKind, body []byte) ([]string, error) {
	loader := analyzeSchemaLoader
	switch kind {
	case suggestSchema:
		loader = suggestSchemaLoader
	case validateSchema:
		loader = validateSchemaLoader
	}

	result, err := gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return []string{"request body is not valid JSON"}, fmt.Errorf("validate request: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return details, fmt.Errorf("request failed schema validation")
}
