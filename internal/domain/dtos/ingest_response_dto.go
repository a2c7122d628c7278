package dtos

// IngestResponse confirms a successful ingestion.
type IngestResponse struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}
