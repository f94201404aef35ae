//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// SpyMigratorRepository implements repositories.MigratorRepository as a
// configurable spy. It claims every file ending in Suffix.
type SpyMigratorRepository struct {
	mu sync.Mutex

	// --- identity ---
	MigratorName string
	Suffix       string

	// --- Migrate ---
	Replacements int
	FailOn       string // base name that yields an error result
	PanicOn      string // base name that makes Migrate panic
	Migrated     []string
	LastOpts     entities.MigrationOptions
}

var _ repositories.MigratorRepository = (*SpyMigratorRepository)(nil)

func (m *SpyMigratorRepository) Name() string { return m.MigratorName }

func (m *SpyMigratorRepository) Detect(path string) bool {
	return strings.HasSuffix(path, m.Suffix)
}

func (m *SpyMigratorRepository) Migrate(
	path string,
	_ *entities.RuleTable,
	opts entities.MigrationOptions,
) entities.MigrationResult {
	m.mu.Lock()
	m.Migrated = append(m.Migrated, path)
	m.LastOpts = opts
	m.mu.Unlock()

	base := filepath.Base(path)
	if base == m.PanicOn {
		panic("boom")
	}

	result := entities.NewMigrationResult(path, m.MigratorName)
	if base == m.FailOn {
		result.Fail("Failed to read file: denied")
		return result
	}
	result.Replacements = m.Replacements
	result.Modified = m.Replacements > 0
	return result
}

// MigratedBaseNames returns the base names of the migrated paths.
func (m *SpyMigratorRepository) MigratedBaseNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.Migrated))
	for _, path := range m.Migrated {
		names = append(names, filepath.Base(path))
	}
	return names
}
