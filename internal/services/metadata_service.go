package services

import (
	"context"

	"go.uber.org/zap"

	"dicom-ingest-service/internal/domain/dtos"
	"dicom-ingest-service/internal/domain/repositories"
)

// Compile-time check to ensure MetadataServiceImpl implements MetadataServiceContract.
var _ MetadataServiceContract = (*MetadataServiceImpl)(nil)

// MetadataServiceImpl implements MetadataServiceContract on top of the record
// repository.
type MetadataServiceImpl struct {
	fileRepo repositories.DicomFileRepositoryContract
	logger   *zap.SugaredLogger
}

// NewMetadataService creates a new instance of MetadataServiceImpl.
func NewMetadataService(fileRepo repositories.DicomFileRepositoryContract, logger *zap.SugaredLogger) MetadataServiceContract {
	return &MetadataServiceImpl{fileRepo: fileRepo, logger: logger}
}

func (s *MetadataServiceImpl) GetMetadata(ctx context.Context, filename string) (*dtos.FileMetadataDTO, error) {
	file, err := s.fileRepo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}
	meta := dtos.MapFileToMetadata(file)
	return &meta, nil
}

func (s *MetadataServiceImpl) GetDetail(ctx context.Context, filename string) (*dtos.FileDetailDTO, error) {
	file, err := s.fileRepo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}
	detail := dtos.MapFileToDetail(file)
	return &detail, nil
}

func (s *MetadataServiceImpl) ListFiles(ctx context.Context) ([]dtos.FileSummaryDTO, error) {
	files, err := s.fileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.FileSummaryDTO, 0, len(files))
	for _, file := range files {
		summaries = append(summaries, dtos.MapFileToSummary(file))
	}
	return summaries, nil
}

func (s *MetadataServiceImpl) ResetAll(ctx context.Context) error {
	s.logger.Infow("deleting all records and restarting the id sequence")
	return s.fileRepo.ResetAll(ctx)
}
