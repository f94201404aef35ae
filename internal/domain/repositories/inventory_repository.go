package repositories

import "github.com/rios0rios0/jakartamigrate/internal/domain/entities"

// InventoryRepository exports the dependency coordinates left in the
// migrated descriptors.
type InventoryRepository interface {
	Export(path string, summary *entities.Summary) error
}
