//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository with a
// fixed answer.
type StubWorkspaceRepository struct {
	Result     entities.WorkspaceStatus
	Err        error
	StatusDirs []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (w *StubWorkspaceRepository) Status(dir string) (entities.WorkspaceStatus, error) {
	w.StatusDirs = append(w.StatusDirs, dir)
	return w.Result, w.Err
}
