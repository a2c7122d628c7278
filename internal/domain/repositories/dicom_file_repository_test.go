package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dicom-ingest-service/internal/apperrors"
	"dicom-ingest-service/internal/domain/entities"
)

func newTestRepository(t *testing.T) *DicomFileRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.DicomFile{}))
	return NewDicomFileRepository(db, zap.NewNop().Sugar())
}

func testFile(filename string) *entities.DicomFile {
	return &entities.DicomFile{
		Filename:      filename,
		PatientID:     "P-001",
		PatientName:   "Doe, John",
		StudyDate:     "15-Jan-2023",
		StudyModality: "CT",
		FilePath:      "uploads/" + filename,
	}
}

func TestDicomFileRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testFile("a.dcm")))

	got, err := repo.GetByFilename(ctx, "a.dcm")
	require.NoError(t, err)
	assert.Equal(t, "a.dcm", got.Filename)
	assert.Equal(t, "Doe, John", got.PatientName)
	assert.NotZero(t, got.ID)
}

func TestDicomFileRepository_DuplicateFilename(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := testFile("a.dcm")
	require.NoError(t, repo.Create(ctx, first))

	second := testFile("a.dcm")
	second.PatientName = "Someone, Else"
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateFile))

	// First record must be unmodified.
	got, err := repo.GetByFilename(ctx, "a.dcm")
	require.NoError(t, err)
	assert.Equal(t, "Doe, John", got.PatientName)
	assert.Equal(t, first.ID, got.ID)
}

func TestDicomFileRepository_GetByFilename_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByFilename(context.Background(), "missing.dcm")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDicomFileRepository_ListAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testFile("a.dcm")))
	require.NoError(t, repo.Create(ctx, testFile("b.dcm")))

	files, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{files[0].Filename, files[1].Filename}
	assert.ElementsMatch(t, []string{"a.dcm", "b.dcm"}, names)
}

func TestDicomFileRepository_ResetAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, testFile(fmt.Sprintf("f%d.dcm", i))))
	}

	require.NoError(t, repo.ResetAll(ctx))

	files, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	// The ID sequence restarts at 1 for the next insert.
	fresh := testFile("fresh.dcm")
	require.NoError(t, repo.Create(ctx, fresh))
	assert.Equal(t, uint(1), fresh.ID)
}

func TestDicomFileRepository_ResetAll_EmptyStore(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.ResetAll(context.Background()))
}
