package dtos

import "dicom-ingest-service/internal/domain/entities"

// MapFileToSummary converts a stored record to its list view.
func MapFileToSummary(file *entities.DicomFile) FileSummaryDTO {
	return FileSummaryDTO{
		Filename:          file.Filename,
		PatientName:       file.PatientName,
		StudyDate:         file.StudyDate,
		Modality:          file.StudyModality,
		SeriesDescription: file.SeriesDescription,
	}
}

// MapFileToMetadata converts a stored record to the short metadata view.
func MapFileToMetadata(file *entities.DicomFile) FileMetadataDTO {
	return FileMetadataDTO{
		Filename:    file.Filename,
		PatientID:   file.PatientID,
		PatientName: file.PatientName,
		StudyDate:   file.StudyDate,
		Modality:    file.StudyModality,
	}
}

// MapFileToDetail converts a stored record to the full-record view.
func MapFileToDetail(file *entities.DicomFile) FileDetailDTO {
	return FileDetailDTO{
		Filename:          file.Filename,
		PatientID:         file.PatientID,
		PatientName:       file.PatientName,
		PatientBirthDate:  file.PatientBirthDate,
		PatientSex:        file.PatientSex,
		PatientAge:        file.PatientAge,
		PatientWeight:     file.PatientWeight,
		PatientAddress:    file.PatientAddress,
		StudyDate:         file.StudyDate,
		StudyTime:         file.StudyTime,
		StudyID:           file.StudyID,
		StudyModality:     file.StudyModality,
		StudyDescription:  file.StudyDescription,
		SeriesDate:        file.SeriesDate,
		SeriesTime:        file.SeriesTime,
		SeriesDescription: file.SeriesDescription,
		FilePath:          file.FilePath,
	}
}
