package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// WorkspaceRepository implements repositories.WorkspaceRepository with go-git.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a new git-backed workspace inspector.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

// Status reports whether dir lives in a git work tree and whether that
// tree has uncommitted changes. A directory outside any repository is not
// an error.
func (it *WorkspaceRepository) Status(dir string) (entities.WorkspaceStatus, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return entities.WorkspaceStatus{}, nil
	}
	if err != nil {
		return entities.WorkspaceStatus{}, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return entities.WorkspaceStatus{}, nil
	}
	if err != nil {
		return entities.WorkspaceStatus{}, fmt.Errorf("failed to open work tree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return entities.WorkspaceStatus{}, fmt.Errorf("failed to read work tree status: %w", err)
	}

	return entities.WorkspaceStatus{
		Tracked: true,
		Clean:   status.IsClean(),
		Root:    worktree.Filesystem.Root(),
	}, nil
}
