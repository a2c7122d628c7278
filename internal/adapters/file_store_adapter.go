package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore defines the interface for raw source file storage.
type FileStore interface {
	// Save writes data under the basename of filename and returns the
	// stored path.
	Save(filename string, data []byte) (string, error)
	// Delete removes a previously saved file.
	Delete(filename string) error
	// Path returns the storage path a filename maps to, without touching disk.
	Path(filename string) string
}

// Compile-time check to ensure LocalFileStore implements FileStore.
var _ FileStore = (*LocalFileStore)(nil)

// LocalFileStore keeps raw uploads in a single directory on the local
// filesystem.
type LocalFileStore struct {
	dir    string
	logger *zap.SugaredLogger
}

// NewLocalFileStore creates the upload directory if needed and returns a
// store rooted there.
func NewLocalFileStore(dir string, logger *zap.SugaredLogger) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir, logger: logger}, nil
}

func (s *LocalFileStore) Save(filename string, data []byte) (string, error) {
	path := s.Path(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}
	s.logger.Debugw("raw file stored", "path", path, "bytes", len(data))
	return path, nil
}

func (s *LocalFileStore) Delete(filename string) error {
	path := s.Path(filename)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("could not delete %s: %w", path, err)
	}
	s.logger.Debugw("raw file deleted", "path", path)
	return nil
}

func (s *LocalFileStore) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
