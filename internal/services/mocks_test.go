package services

import (
	"context"
	"errors"
	"sync/atomic"

	"dicom-ingest-service/internal/adapters"
	"dicom-ingest-service/internal/domain/entities"
	"dicom-ingest-service/internal/domain/repositories"
)

// --- MockDicomFileRepository ---
// Compile-time check to ensure MockDicomFileRepository implements DicomFileRepositoryContract
var _ repositories.DicomFileRepositoryContract = (*MockDicomFileRepository)(nil)

// MockDicomFileRepository is a mock implementation of DicomFileRepositoryContract.
type MockDicomFileRepository struct {
	CreateFunc        func(ctx context.Context, file *entities.DicomFile) error
	GetByFilenameFunc func(ctx context.Context, filename string) (*entities.DicomFile, error)
	ListAllFunc       func(ctx context.Context) ([]*entities.DicomFile, error)
	ResetAllFunc      func(ctx context.Context) error

	CreateFuncCallCount   int32
	ResetAllFuncCallCount int32
}

func (m *MockDicomFileRepository) Create(ctx context.Context, file *entities.DicomFile) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, file)
	}
	return nil
}

func (m *MockDicomFileRepository) GetByFilename(ctx context.Context, filename string) (*entities.DicomFile, error) {
	if m.GetByFilenameFunc != nil {
		return m.GetByFilenameFunc(ctx, filename)
	}
	return nil, errors.New("GetByFilenameFunc not implemented in mock")
}

func (m *MockDicomFileRepository) ListAll(ctx context.Context) ([]*entities.DicomFile, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDicomFileRepository) ResetAll(ctx context.Context) error {
	atomic.AddInt32(&m.ResetAllFuncCallCount, 1)
	if m.ResetAllFunc != nil {
		return m.ResetAllFunc(ctx)
	}
	return nil
}

// --- MockFileStore ---
// Compile-time check to ensure MockFileStore implements adapters.FileStore
var _ adapters.FileStore = (*MockFileStore)(nil)

// MockFileStore is a mock implementation of adapters.FileStore.
type MockFileStore struct {
	SaveFunc   func(filename string, data []byte) (string, error)
	DeleteFunc func(filename string) error

	SaveFuncCallCount   int32
	DeleteFuncCallCount int32
}

func (m *MockFileStore) Save(filename string, data []byte) (string, error) {
	atomic.AddInt32(&m.SaveFuncCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(filename, data)
	}
	return "uploads/" + filename, nil
}

func (m *MockFileStore) Delete(filename string) error {
	atomic.AddInt32(&m.DeleteFuncCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(filename)
	}
	return nil
}

func (m *MockFileStore) Path(filename string) string {
	return "uploads/" + filename
}

// --- MockFetcher ---
// Compile-time check to ensure MockFetcher implements adapters.Fetcher
var _ adapters.Fetcher = (*MockFetcher)(nil)

// MockFetcher is a mock implementation of adapters.Fetcher.
type MockFetcher struct {
	FetchFunc func(ctx context.Context, url string) ([]byte, error)

	FetchFuncCallCount int32
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	atomic.AddInt32(&m.FetchFuncCallCount, 1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return nil, errors.New("FetchFunc not implemented in mock")
}
