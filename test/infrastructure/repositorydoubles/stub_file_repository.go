//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sync"

	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// StubFileRepository implements repositories.FileRepository in memory.
type StubFileRepository struct {
	mu sync.Mutex

	// --- ReadFile ---
	Files   map[string][]byte
	ReadErr error

	// --- Backup ---
	BackupErr error
	Backups   map[string][]byte

	// --- WriteFile ---
	WriteErr error
	Writes   map[string][]byte
}

var _ repositories.FileRepository = (*StubFileRepository)(nil)

// NewStubFileRepository creates a stub holding a single file.
func NewStubFileRepository(path string, content []byte) *StubFileRepository {
	return &StubFileRepository{
		Files:   map[string][]byte{path: content},
		Backups: map[string][]byte{},
		Writes:  map[string][]byte{},
	}
}

func (s *StubFileRepository) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	content, ok := s.Files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (s *StubFileRepository) Backup(path string, original []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.BackupErr != nil {
		return s.BackupErr
	}
	s.Backups[path] = append([]byte{}, original...)
	return nil
}

func (s *StubFileRepository) WriteFile(path string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Writes[path] = append([]byte{}, content...)
	s.Files[path] = content
	return nil
}
