package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dicom-ingest-service/internal/apperrors"
	"dicom-ingest-service/internal/domain/entities"
)

// Compile-time check to ensure DicomFileRepository implements the contract.
var _ DicomFileRepositoryContract = (*DicomFileRepository)(nil)

// DicomFileRepository is the gorm-backed implementation of
// DicomFileRepositoryContract. The *gorm.DB must be opened with
// TranslateError so unique-constraint violations surface as
// gorm.ErrDuplicatedKey.
type DicomFileRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewDicomFileRepository creates a new DicomFileRepository.
func NewDicomFileRepository(db *gorm.DB, logger *zap.SugaredLogger) *DicomFileRepository {
	return &DicomFileRepository{db: db, logger: logger}
}

// Create inserts the record in a single all-or-nothing statement.
func (r *DicomFileRepository) Create(ctx context.Context, file *entities.DicomFile) error {
	err := r.db.WithContext(ctx).Create(file).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateFile, file.Filename)
	}
	return err
}

func (r *DicomFileRepository) GetByFilename(ctx context.Context, filename string) (*entities.DicomFile, error) {
	var file entities.DicomFile
	err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, filename)
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *DicomFileRepository) ListAll(ctx context.Context) ([]*entities.DicomFile, error) {
	var files []*entities.DicomFile
	if err := r.db.WithContext(ctx).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// ResetAll deletes every record and restarts the ID sequence at 1. The
// sequence restart is best-effort: a failure after the delete has committed
// is logged, not returned.
func (r *DicomFileRepository) ResetAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.DicomFile{}).Error
	if err != nil {
		return err
	}

	if err := r.restartSequence(ctx); err != nil {
		r.logger.Errorw("records deleted but id sequence restart failed",
			"table", entities.DicomFile{}.TableName(), "error", err)
	}
	return nil
}

func (r *DicomFileRepository) restartSequence(ctx context.Context) error {
	table := entities.DicomFile{}.TableName()
	switch name := r.db.Dialector.Name(); name {
	case "postgres":
		return r.db.WithContext(ctx).Exec(fmt.Sprintf("ALTER SEQUENCE %s_id_seq RESTART WITH 1", table)).Error
	case "sqlite":
		return r.db.WithContext(ctx).Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
	default:
		return fmt.Errorf("no sequence restart for dialect %q", name)
	}
}
