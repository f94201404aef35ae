//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// SpyInventoryRepository implements repositories.InventoryRepository as a spy.
type SpyInventoryRepository struct {
	ExportErr   error
	ExportCalls int
	LastPath    string
	LastSummary *entities.Summary
}

var _ repositories.InventoryRepository = (*SpyInventoryRepository)(nil)

func (i *SpyInventoryRepository) Export(path string, summary *entities.Summary) error {
	i.ExportCalls++
	i.LastPath = path
	i.LastSummary = summary
	return i.ExportErr
}
