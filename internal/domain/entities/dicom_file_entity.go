package entities

// DicomFile is the flat normalized metadata record stored per ingested file.
// Every DICOM field is persisted as a string; descriptive fields default to
// "Unknown" and date fields to "" when absent from the source.
type DicomFile struct {
	ID                uint   `json:"id" db:"id" gorm:"primaryKey"`
	Filename          string `json:"filename" db:"filename" gorm:"uniqueIndex;not null"`
	PatientID         string `json:"patient_id" db:"patient_id"`
	PatientName       string `json:"patient_name" db:"patient_name"`
	PatientBirthDate  string `json:"patient_birth_date" db:"patient_birth_date"`
	PatientSex        string `json:"patient_sex" db:"patient_sex"`
	PatientAge        string `json:"patient_age" db:"patient_age"`
	PatientWeight     string `json:"patient_weight" db:"patient_weight"`
	PatientAddress    string `json:"patient_address" db:"patient_address"`
	StudyDate         string `json:"study_date" db:"study_date"`
	StudyTime         string `json:"study_time" db:"study_time"`
	StudyID           string `json:"study_id" db:"study_id"`
	StudyModality     string `json:"study_modality" db:"study_modality"`
	StudyDescription  string `json:"study_description" db:"study_description"`
	SeriesDate        string `json:"series_date" db:"series_date"`
	SeriesTime        string `json:"series_time" db:"series_time"`
	SeriesDescription string `json:"series_description" db:"series_description"`
	FilePath          string `json:"file_path" db:"file_path"`
}

// TableName keeps the table name stable regardless of gorm's pluralization.
func (DicomFile) TableName() string {
	return "dicom_files"
}
