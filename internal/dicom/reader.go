// Package dicom layers the normalization contract for ingestion on top of the
// suyashkumar/dicom parser: structural validation, first-value string access
// and the tagged person-name variant decided at the parser boundary.
package dicom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Dataset wraps a parsed DICOM dataset for easier access.
type Dataset struct {
	Data dicom.Dataset
}

// ParseBytes parses an in-memory DICOM file, skipping pixel data frames.
func ParseBytes(data []byte) (*Dataset, error) {
	ds, err := dicom.Parse(bytes.NewReader(data), int64(len(data)), nil, dicom.SkipPixelData())
	if err != nil {
		return nil, fmt.Errorf("could not parse DICOM: %w", err)
	}
	return &Dataset{Data: ds}, nil
}

// Validate probes whether the byte stream is a well-formed DICOM file by
// attempting a full structural parse. It has no side effects.
func Validate(data []byte) bool {
	_, err := dicom.Parse(bytes.NewReader(data), int64(len(data)), nil)
	return err == nil
}

// GetString returns the first value of a tag as a string. The second return
// reports whether the tag is present in the dataset.
func (d *Dataset) GetString(t tag.Tag) (string, bool) {
	elem, err := d.Data.FindElementByTag(t)
	if err != nil || elem.Value == nil {
		return "", false
	}

	raw := elem.Value.GetValue()
	if raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case []string:
		if len(v) > 0 {
			return v[0], true
		}
		return "", true
	case string:
		return v, true
	}
	return fmt.Sprintf("%v", raw), true
}

// PersonName is the value of a PN element. Structured is true when the raw
// value carries separable family and given component groups; callers must not
// read Family/Given otherwise.
type PersonName struct {
	Raw        string
	Family     string
	Given      string
	Structured bool
}

// GetPersonName returns the person-name variant for a PN tag.
func (d *Dataset) GetPersonName(t tag.Tag) (PersonName, bool) {
	raw, ok := d.GetString(t)
	if !ok {
		return PersonName{}, false
	}
	return parsePersonName(raw), true
}

// parsePersonName decides the name variant once, at the parser boundary.
// PN values delimit components with "^" (family^given^middle^prefix^suffix).
func parsePersonName(raw string) PersonName {
	parts := strings.Split(raw, "^")
	if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
		return PersonName{Raw: raw, Family: parts[0], Given: parts[1], Structured: true}
	}
	return PersonName{Raw: raw}
}
