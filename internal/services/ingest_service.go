package services

import (
	"context"
	neturl "net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dicom-ingest-service/internal/adapters"
	"dicom-ingest-service/internal/apperrors"
	"dicom-ingest-service/internal/dicom"
	"dicom-ingest-service/internal/domain/dtos"
	"dicom-ingest-service/internal/domain/repositories"
)

// DicomExtension is the only filename suffix accepted for ingestion.
const DicomExtension = ".dcm"

const ingestSuccessMessage = "File uploaded and metadata stored successfully"

// Compile-time check to ensure IngestServiceImpl implements IngestServiceContract.
var _ IngestServiceContract = (*IngestServiceImpl)(nil)

// IngestServiceImpl implements IngestServiceContract. Each request runs as one
// linear synchronous pipeline; concurrency control is left to the repository's
// uniqueness constraint.
type IngestServiceImpl struct {
	fileRepo  repositories.DicomFileRepositoryContract
	fileStore adapters.FileStore
	fetcher   adapters.Fetcher
	logger    *zap.SugaredLogger
}

// NewIngestService creates a new instance of IngestServiceImpl.
func NewIngestService(
	fileRepo repositories.DicomFileRepositoryContract,
	fileStore adapters.FileStore,
	fetcher adapters.Fetcher,
	logger *zap.SugaredLogger,
) IngestServiceContract {
	return &IngestServiceImpl{
		fileRepo:  fileRepo,
		fileStore: fileStore,
		fetcher:   fetcher,
		logger:    logger,
	}
}

// IngestUpload runs the pipeline for a directly uploaded payload.
func (s *IngestServiceImpl) IngestUpload(ctx context.Context, filename string, data []byte) (*dtos.IngestResponse, error) {
	return s.ingest(ctx, filename, data)
}

// IngestFromURL downloads the remote file, then runs the shared pipeline.
// A transport failure or non-2xx status rejects before anything is written.
func (s *IngestServiceImpl) IngestFromURL(ctx context.Context, url string) (*dtos.IngestResponse, error) {
	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warnw("remote fetch failed", "url", url, "error", err)
		return nil, err
	}

	parsed, err := neturl.Parse(url)
	if err != nil {
		return nil, apperrors.NewFetchError(url, 0, err)
	}

	return s.ingest(ctx, path.Base(parsed.Path), data)
}

// ingest is the shared pipeline: extension gate, raw write, validate,
// extract, persist. On validation failure the raw file is deleted; on
// extraction failure it is retained.
func (s *IngestServiceImpl) ingest(ctx context.Context, filename string, data []byte) (*dtos.IngestResponse, error) {
	filename = filepath.Base(filename)
	log := s.logger.With("ingest_id", uuid.New().String(), "filename", filename)

	if !strings.HasSuffix(strings.ToLower(filename), DicomExtension) {
		log.Warnw("rejected before write: unsupported extension")
		return nil, apperrors.ErrUnsupportedExtension
	}

	filePath, err := s.fileStore.Save(filename, data)
	if err != nil {
		log.Errorw("could not store raw file", "error", err)
		return nil, err
	}

	if !dicom.Validate(data) {
		log.Warnw("rejected: not a well-formed DICOM file")
		if delErr := s.fileStore.Delete(filename); delErr != nil {
			log.Errorw("could not delete rejected raw file", "error", delErr)
		}
		return nil, apperrors.ErrInvalidFormat
	}

	ds, err := dicom.ParseBytes(data)
	if err != nil {
		// Validate just succeeded, so this only trips on pathological input.
		return nil, apperrors.ErrInvalidFormat
	}

	record, err := dicom.Extract(ds, filename, filePath)
	if err != nil {
		// The raw file is retained on extraction failure.
		log.Warnw("rejected: metadata extraction failed", "error", err)
		return nil, err
	}

	if err := s.fileRepo.Create(ctx, record); err != nil {
		log.Warnw("rejected: could not persist record", "error", err)
		return nil, err
	}

	log.Infow("file ingested", "patient_id", record.PatientID, "modality", record.StudyModality)
	return &dtos.IngestResponse{Filename: filename, Message: ingestSuccessMessage}, nil
}
