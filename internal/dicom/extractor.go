package dicom

import (
	"fmt"
	"time"

	"github.com/suyashkumar/dicom/pkg/tag"

	"dicom-ingest-service/internal/apperrors"
	"dicom-ingest-service/internal/domain/entities"
)

// Unknown is the sentinel stored for descriptive fields absent from the source.
const Unknown = "Unknown"

// Source dates are compact 8-digit YYYYMMDD; stored dates are DD-Mon-YYYY.
const (
	sourceDateLayout = "20060102"
	storedDateLayout = "02-Jan-2006"
)

// Extract normalizes a parsed dataset into the flat record stored per file.
// It fails with *apperrors.ExtractionError when a value present in the source
// cannot be normalized (e.g. a malformed date). The dataset is not mutated.
func Extract(ds *Dataset, filename, filePath string) (*entities.DicomFile, error) {
	record := &entities.DicomFile{
		Filename: filename,
		FilePath: filePath,

		PatientID:      stringOrUnknown(ds, tag.PatientID),
		PatientName:    extractPatientName(ds),
		PatientSex:     stringOrUnknown(ds, tag.PatientSex),
		PatientAge:     stringOrUnknown(ds, tag.PatientAge),
		PatientWeight:  stringOrUnknown(ds, tag.PatientWeight),
		PatientAddress: stringOrUnknown(ds, tag.PatientAddress),

		StudyTime:        stringOrUnknown(ds, tag.StudyTime),
		StudyID:          stringOrUnknown(ds, tag.StudyID),
		StudyModality:    extractModality(ds),
		StudyDescription: stringOrUnknown(ds, tag.StudyDescription),

		SeriesTime:        stringOrUnknown(ds, tag.SeriesTime),
		SeriesDescription: stringOrUnknown(ds, tag.SeriesDescription),
	}

	var err error
	if record.PatientBirthDate, err = extractDate(ds, tag.PatientBirthDate, "patient_birth_date"); err != nil {
		return nil, err
	}
	if record.StudyDate, err = extractDate(ds, tag.StudyDate, "study_date"); err != nil {
		return nil, err
	}
	if record.SeriesDate, err = extractDate(ds, tag.SeriesDate, "series_date"); err != nil {
		return nil, err
	}

	return record, nil
}

func stringOrUnknown(ds *Dataset, t tag.Tag) string {
	if v, ok := ds.GetString(t); ok {
		return v
	}
	return Unknown
}

// extractPatientName flattens structured names to "family, given" and keeps
// plain values as-is.
func extractPatientName(ds *Dataset) string {
	name, ok := ds.GetPersonName(tag.PatientName)
	if !ok {
		return Unknown
	}
	if name.Structured {
		return fmt.Sprintf("%s, %s", name.Family, name.Given)
	}
	return name.Raw
}

// extractModality reads the named modality field and falls back to a direct
// lookup of tag (0008,0060) when the named field is absent.
func extractModality(ds *Dataset) string {
	modality := stringOrUnknown(ds, tag.Modality)
	if modality != Unknown {
		return modality
	}
	if v, ok := ds.GetString(tag.Tag{Group: 0x0008, Element: 0x0060}); ok {
		return v
	}
	return Unknown
}

// extractDate reformats a non-empty compact date; an absent or empty source
// value stays empty, a malformed one is a hard extraction error.
func extractDate(ds *Dataset, t tag.Tag, field string) (string, error) {
	raw, ok := ds.GetString(t)
	if !ok || raw == "" {
		return "", nil
	}
	parsed, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		return "", apperrors.NewExtractionError(field, raw, err)
	}
	return parsed.Format(storedDateLayout), nil
}
