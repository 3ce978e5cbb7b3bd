// Package schemas provides JSON Schema validation for caller-supplied data
// artifacts before they enter the scoring pipeline.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed flat_achievements.schema.json
var flatAchievementsSchema []byte

//go:embed scored_leads.schema.json
var scoredLeadsSchema []byte

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateFlatAchievements validates a flattened achievements JSON document.
func ValidateFlatAchievements(document []byte) error {
	return validateBytes(flatAchievementsSchema, document)
}

// ValidateScoredLeads validates a scored-leads batch JSON document.
func ValidateScoredLeads(document []byte) error {
	return validateBytes(scoredLeadsSchema, document)
}

func validateBytes(schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
