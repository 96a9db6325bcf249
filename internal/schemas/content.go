// Package schemas provides JSON Schema validation for template content maps.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// contentSchemas holds one JSON Schema per template id, validating the
// open-ended content map a letter request carries for that template. The set
// is fixed at compile time; templates without an entry accept any content.
var contentSchemas = map[string]string{
	"surat_tugas": `{
		"type": "object",
		"required": ["assignees"],
		"properties": {
			"assignees": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["nama"],
					"properties": {"nama": {"type": "string", "minLength": 1}}
				}
			},
			"details": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["label", "value"]
				}
			},
			"pembuka": {"type": "string"},
			"penutup": {"type": "string"}
		}
	}`,
	"lembar_persetujuan": `{
		"type": "object",
		"required": ["students", "nama_perusahaan"],
		"properties": {
			"students": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["nama"],
					"properties": {"nama": {"type": "string", "minLength": 1}}
				}
			},
			"nama_perusahaan": {"type": "string", "minLength": 1},
			"tempat_tanggal": {"type": "string"}
		}
	}`,
	"surat_dinas": `{
		"type": "object",
		"required": ["penerima", "isi"],
		"properties": {
			"penerima": {"type": "object", "required": ["nama"]},
			"isi": {"type": "string", "minLength": 1}
		}
	}`,
	"surat_edaran": `{
		"type": "object",
		"required": ["penerima", "isi"],
		"properties": {
			"penerima": {"type": "object", "required": ["nama"]},
			"isi": {"type": "string", "minLength": 1}
		}
	}`,
	"surat_pemberitahuan": `{
		"type": "object",
		"required": ["penerima", "isi"],
		"properties": {
			"penerima": {"type": "object", "required": ["nama"]},
			"isi": {"type": "string", "minLength": 1}
		}
	}`,
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("content validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Template string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load content schema for %s: %v", e.Template, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateContent validates a letter's content map against the schema
// registered for templateID. Templates without a registered schema pass.
func ValidateContent(templateID string, content map[string]any) error {
	schema, ok := contentSchemas[templateID]
	if !ok {
		return nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Template: templateID, Cause: err}
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
