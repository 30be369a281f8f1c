// Package schemas provides JSON Schema validation for external configuration files.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// TagRulesetSchema validates tag ruleset override files.
const TagRulesetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["default", "rules"],
  "properties": {
    "default": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["keywords", "tags"],
        "properties": {
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          },
          "tags": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

// SuggestionCatalogSchema validates course-suggestion catalog files.
const SuggestionCatalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "array",
    "items": {
      "type": "object",
      "required": ["courseCode", "courseName", "relevancePercent"],
      "properties": {
        "courseCode": {"type": "string", "minLength": 1},
        "courseName": {"type": "string", "minLength": 1},
        "relevancePercent": {"type": "integer", "minimum": 0, "maximum": 100}
      }
    }
  }
}`

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a JSON document against a schema. It returns a
// *ValidationError listing every violation, or an error if the schema or
// document cannot be loaded.
func Validate(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
