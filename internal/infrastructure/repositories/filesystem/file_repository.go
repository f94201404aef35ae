package filesystem

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

const (
	backupSuffix    = ".bak"
	defaultFileMode = 0o644
)

// FileRepository implements repositories.FileRepository on the local disk.
type FileRepository struct{}

// NewFileRepository creates a new local file repository.
func NewFileRepository() repositories.FileRepository {
	return &FileRepository{}
}

func (it *FileRepository) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Backup writes the original bytes to a sibling file with a ".bak" suffix.
func (it *FileRepository) Backup(path string, original []byte) error {
	backupPath := path + backupSuffix
	if err := os.WriteFile(backupPath, original, fileMode(path)); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	logger.Debugf("Created backup: %s", backupPath)
	return nil
}

// WriteFile overwrites path, keeping its permission bits.
func (it *FileRepository) WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, fileMode(path)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debugf("Successfully wrote %s", path)
	return nil
}

func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return defaultFileMode
}
