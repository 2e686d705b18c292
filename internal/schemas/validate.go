// Package schemas validates candidate and job JSON documents against the
// repository's JSON Schema files before they enter the scoring engine.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Relative schema locations within the repository.
const (
	CandidateSchema = "schemas/candidate.schema.json"
	JobSchema       = "schemas/job.schema.json"
)

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations found in one document.
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

// SchemaLoadError reports a problem loading or parsing the schema itself.
type SchemaLoadError struct {
	Path  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ResolvePath finds a schema file by trying the path relative to the current
// working directory and then up to two parent directories. CLI commands and
// tests run from different working directories; the first existing candidate
// wins. Returns empty string when none is found.
func ResolvePath(relativePath string) string {
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

// ValidateFile validates a JSON document file against the schema at the
// given repository-relative path.
func ValidateFile(schemaRelPath, documentPath string) error {
	schemaPath := ResolvePath(schemaRelPath)
	if schemaPath == "" {
		return &SchemaLoadError{Path: schemaRelPath, Cause: os.ErrNotExist}
	}

	documentAbs, err := filepath.Abs(documentPath)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}
	if _, err := os.Stat(documentAbs); os.IsNotExist(err) {
		return fmt.Errorf("document file not found: %s", documentAbs)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + documentAbs)
	return validate(schemaLoader, documentLoader, schemaPath)
}

// ValidateBytes validates raw JSON content against the schema at the given
// repository-relative path.
func ValidateBytes(schemaRelPath string, document []byte) error {
	schemaPath := ResolvePath(schemaRelPath)
	if schemaPath == "" {
		return &SchemaLoadError{Path: schemaRelPath, Cause: os.ErrNotExist}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(document)
	return validate(schemaLoader, documentLoader, schemaPath)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaPath string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
