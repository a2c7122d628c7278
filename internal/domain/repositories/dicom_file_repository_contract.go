package repositories

import (
	"context"

	"dicom-ingest-service/internal/domain/entities"
)

// DicomFileRepositoryContract defines the persistence operations for
// normalized DICOM records.
type DicomFileRepositoryContract interface {
	// Create inserts a record; a filename that already exists fails with
	// apperrors.ErrDuplicateFile and leaves the stored record untouched.
	Create(ctx context.Context, file *entities.DicomFile) error
	// GetByFilename returns the record for a filename, or apperrors.ErrNotFound.
	GetByFilename(ctx context.Context, filename string) (*entities.DicomFile, error)
	// ListAll returns every stored record, in store-defined order.
	ListAll(ctx context.Context) ([]*entities.DicomFile, error)
	// ResetAll deletes every record and restarts the ID sequence at 1.
	ResetAll(ctx context.Context) error
}
