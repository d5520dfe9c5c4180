package document

import "fmt"

// UnsupportedFormatError indicates the declared content type has no decoder.
// The document is rejected before any extraction is attempted.
type UnsupportedFormatError struct {
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.ContentType)
}

// ExtractionFailedError indicates an aggregate read failure (corrupt file,
// unreadable stream). Per-page decode failures do not produce this error.
type ExtractionFailedError struct {
	Path  string
	Cause error
}

func (e *ExtractionFailedError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.Cause
}

// NoExtractableTextError indicates decoding succeeded but yielded no usable
// text. No downstream extractor can proceed, so this is terminal for the
// document.
type NoExtractableTextError struct {
	Path string
}

func (e *NoExtractableTextError) Error() string {
	return fmt.Sprintf("no extractable text in %s", e.Path)
}
