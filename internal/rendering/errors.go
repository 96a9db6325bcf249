// Package rendering renders official letters from HTML templates into PDF.
package rendering

import "fmt"

// UnknownTemplateError indicates the requested template id is not in the
// fixed allow-list of supported templates.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template %q is not supported", e.Name)
}

// TemplateMissingError indicates an allow-listed template's backing file
// could not be located.
type TemplateMissingError struct {
	Name string
	Dir  string
}

func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("template file %q not found in %s", e.Name, e.Dir)
}

// TemplateError represents an error parsing an HTML template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
