package services

import (
	"context"

	"dicom-ingest-service/internal/domain/dtos"
)

// IngestServiceContract defines the operations for the ingestion pipeline
// (validate, extract, persist) for one source file at a time.
type IngestServiceContract interface {
	// IngestUpload runs the pipeline for a directly uploaded payload.
	IngestUpload(ctx context.Context, filename string, data []byte) (*dtos.IngestResponse, error)
	// IngestFromURL downloads the file first, then runs the same pipeline
	// using the URL path basename as the filename.
	IngestFromURL(ctx context.Context, url string) (*dtos.IngestResponse, error)
}
