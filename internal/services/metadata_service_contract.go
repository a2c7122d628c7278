package services

import (
	"context"

	"dicom-ingest-service/internal/domain/dtos"
)

// MetadataServiceContract defines the retrieval and administrative operations
// over stored records.
type MetadataServiceContract interface {
	// GetMetadata returns the short metadata view for a filename.
	GetMetadata(ctx context.Context, filename string) (*dtos.FileMetadataDTO, error)
	// GetDetail returns the full-record view for a filename.
	GetDetail(ctx context.Context, filename string) (*dtos.FileDetailDTO, error)
	// ListFiles returns summaries of every stored record.
	ListFiles(ctx context.Context) ([]dtos.FileSummaryDTO, error)
	// ResetAll deletes every record and restarts the ID sequence at 1.
	ResetAll(ctx context.Context) error
}
