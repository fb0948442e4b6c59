// Package schemas provides JSON Schema validation for operator-supplied payloads.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SpecialInterviewsSchema is the repo-relative path of the pin payload schema.
const SpecialInterviewsSchema = "schemas/special_interviews.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions, so CLI commands work from different working directories
// (including tests). Returns the first path that exists, or empty string.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation errors for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// Validate checks a JSON document against the schema at schemaPath.
// Returns a *ValidationError listing every violation, or an ordinary error
// when the schema itself cannot be loaded.
func Validate(schemaPath string, document []byte) error {
	resolved := ResolveSchemaPath(schemaPath)
	if resolved == "" {
		return fmt.Errorf("schema not found: %s", schemaPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + resolved)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate against %s: %w", schemaPath, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
