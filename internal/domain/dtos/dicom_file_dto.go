package dtos

// FileSummaryDTO is the list view of an ingested file.
type FileSummaryDTO struct {
	Filename          string `json:"filename"`
	PatientName       string `json:"patient_name"`
	StudyDate         string `json:"study_date"`
	Modality          string `json:"modality"`
	SeriesDescription string `json:"series_description"`
}

// FileMetadataDTO is the short per-file metadata view.
type FileMetadataDTO struct {
	Filename    string `json:"filename"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	StudyDate   string `json:"study_date"`
	Modality    string `json:"modality"`
}

// FileDetailDTO is the full-record view, one field per stored column.
type FileDetailDTO struct {
	Filename          string `json:"filename"`
	PatientID         string `json:"patient_id"`
	PatientName       string `json:"patient_name"`
	PatientBirthDate  string `json:"patient_birth_date"`
	PatientSex        string `json:"patient_sex"`
	PatientAge        string `json:"patient_age"`
	PatientWeight     string `json:"patient_weight"`
	PatientAddress    string `json:"patient_address"`
	StudyDate         string `json:"study_date"`
	StudyTime         string `json:"study_time"`
	StudyID           string `json:"study_id"`
	StudyModality     string `json:"study_modality"`
	StudyDescription  string `json:"study_description"`
	SeriesDate        string `json:"series_date"`
	SeriesTime        string `json:"series_time"`
	SeriesDescription string `json:"series_description"`
	FilePath          string `json:"file_path"`
}
