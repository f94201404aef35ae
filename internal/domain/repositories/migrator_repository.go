package repositories

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// MigratorRepository abstracts one kind of source artifact (Java sources,
// Maven descriptors). The orchestration layer classifies each file once
// with Detect and hands it to the matching migrator.
type MigratorRepository interface {
	// Name returns the migrator identifier (e.g. "java", "pom").
	Name() string

	// Detect returns true if the file at path is handled by this migrator.
	Detect(path string) bool

	// Migrate rewrites one file. It never returns an error: every failure is
	// captured in the result so that other files keep being processed.
	Migrate(path string, rules *entities.RuleTable, opts entities.MigrationOptions) entities.MigrationResult
}
