package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/letter-service/internal/rendering"
	"github.com/jonathan/letter-service/internal/sanitize"
	"github.com/jonathan/letter-service/internal/schemas"
)

// Machine-readable error codes returned in response bodies.
const (
	codeValidation      = "VALIDATION_ERROR"
	codeInvalidFilename = "INVALID_FILENAME"
	codePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	codeUnknownTemplate = "UNKNOWN_TEMPLATE"
	codeTemplateMissing = "TEMPLATE_MISSING"
	codeNotFound        = "NOT_FOUND"
	codeRenderFailed    = "RENDER_FAILED"
	codeInvalidRequest  = "INVALID_REQUEST"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		invalidFilename *sanitize.InvalidFilenameError
		tooLarge        *sanitize.PayloadTooLargeError
		unknownTemplate *rendering.UnknownTemplateError
		templateMissing *rendering.TemplateMissingError
		validationErr   *schemas.ValidationError
		fieldErrs       validator.ValidationErrors
	)

	switch {
	case errors.As(err, &fieldErrs), errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidFilename),
		errors.As(err, &unknownTemplate),
		errors.As(err, &templateMissing):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// errorCode maps an error to its machine-readable category.
func errorCode(err error) string {
	var (
		invalidFilename *sanitize.InvalidFilenameError
		tooLarge        *sanitize.PayloadTooLargeError
		unknownTemplate *rendering.UnknownTemplateError
		templateMissing *rendering.TemplateMissingError
		validationErr   *schemas.ValidationError
		fieldErrs       validator.ValidationErrors
	)

	switch {
	case errors.As(err, &fieldErrs), errors.As(err, &validationErr):
		return codeValidation
	case errors.As(err, &invalidFilename):
		return codeInvalidFilename
	case errors.As(err, &tooLarge):
		return codePayloadTooLarge
	case errors.As(err, &unknownTemplate):
		return codeUnknownTemplate
	case errors.As(err, &templateMissing):
		return codeTemplateMissing
	default:
		return codeRenderFailed
	}
}

// failureMessage returns the user-facing message for err. Unexpected renderer
// failures surface only a generic message; detail stays in the server log.
func failureMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "failed to generate PDF"
	}
	return err.Error()
}
