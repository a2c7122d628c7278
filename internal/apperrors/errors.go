// Package apperrors provides ingestion-specific error types so that callers
// can branch on failure class instead of matching message strings.
package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidFormat        = errors.New("ingest: not a well-formed DICOM file")
	ErrUnsupportedExtension = errors.New("ingest: invalid file format, only DICOM files are allowed")
	ErrDuplicateFile        = errors.New("ingest: file with this filename already ingested")
	ErrNotFound             = errors.New("ingest: file not found")
)

// ExtractionError reports a metadata value that was present in the source
// but could not be normalized.
type ExtractionError struct {
	Field string
	Value string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for field %q (value %q): %v", e.Field, e.Value, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError wraps a normalization failure for a single field.
func NewExtractionError(field, value string, err error) *ExtractionError {
	return &ExtractionError{Field: field, Value: value, Err: err}
}

// FetchError reports a failed remote download. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps a transport-level download failure.
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode, Err: err}
}
