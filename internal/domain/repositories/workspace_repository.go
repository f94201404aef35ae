package repositories

import "github.com/rios0rios0/jakartamigrate/internal/domain/entities"

// WorkspaceRepository inspects the version-control state of the directory
// being migrated.
type WorkspaceRepository interface {
	Status(dir string) (entities.WorkspaceStatus, error)
}
