package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-parser/internal/document"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unsupported *document.UnsupportedFormatError
	var noText *document.NoExtractableTextError
	var failed *document.ExtractionFailedError

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &noText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &failed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
